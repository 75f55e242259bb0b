package runtime

import (
	"cmp"
	"context"
	"draw-guess/contract"
	"draw-guess/domain/event"
	"draw-guess/domain/game"
	"draw-guess/errors"
	"draw-guess/observability"
	"draw-guess/runtime/workers"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	_ contract.IRoomRegistry = (*RoomRegistry)(nil)
	_ contract.RoomTicker    = (*RoomRegistry)(nil)
	_ contract.RoomSweeper   = (*RoomRegistry)(nil)
	_ game.RoomDelegate      = (*RoomRegistry)(nil)
)

type RegistryConfig struct {
	WsEndpoint    string
	TickInterval  time.Duration
	SweepInterval time.Duration
	Retention     time.Duration
	DefaultConfig game.GameConfig
	BlankImage    string
	Clock         func() time.Time
}

type roomEntry struct {
	room      *game.GameRoom
	cancel    context.CancelFunc
	createdAt time.Time
}

// RoomRegistry owns every active room.
// It turns room notifications into bus publications and drives one deadline worker per room.
type RoomRegistry struct {
	mu         sync.RWMutex
	rooms      map[string]*roomEntry
	baseCtx    context.Context
	bus        contract.IEventBus
	supervisor contract.ISupervisor
	config     RegistryConfig
	metrics    *observability.Metrics
	log        *slog.Logger
}

func NewRoomRegistry(
	log *slog.Logger,
	bus contract.IEventBus,
	supervisor contract.ISupervisor,
	metrics *observability.Metrics,
	config RegistryConfig,
) *RoomRegistry {
	if config.Clock == nil {
		config.Clock = time.Now
	}
	return &RoomRegistry{
		rooms:      make(map[string]*roomEntry),
		baseCtx:    context.Background(),
		bus:        bus,
		supervisor: supervisor,
		config:     config,
		metrics:    metrics,
		log:        log,
	}
}

// Launch binds room workers to ctx and registers the sweeper on the supervisor.
// The supervisor still has to be run by the caller.
func (r *RoomRegistry) Launch(ctx context.Context) {
	r.mu.Lock()
	r.baseCtx = ctx
	r.mu.Unlock()
	r.supervisor.Add(workers.NewSweeperWorker(r.log, r, r.config.SweepInterval, r.config.Clock))
}

// Close cancels every room deadline worker.
func (r *RoomRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.rooms {
		entry.cancel()
	}
}

func (r *RoomRegistry) Create(host game.Player) (game.JoinTicket, error) {
	id := uuid.NewString()
	defaults := r.config.DefaultConfig
	room := game.NewGameRoom(id, host, game.Options{
		Config:     &defaults,
		Delegate:   r,
		Clock:      r.config.Clock,
		BlankImage: r.config.BlankImage,
		Log:        r.log,
	})

	r.mu.Lock()
	ctx, cancel := context.WithCancel(r.baseCtx)
	r.rooms[id] = &roomEntry{room: room, cancel: cancel, createdAt: r.config.Clock()}
	r.mu.Unlock()

	r.supervisor.Start(ctx, workers.NewDeadlineWorker(r.log, id, r, r.config.TickInterval, r.config.Clock))
	r.metrics.RoomCreated()
	r.log.Info("Room created", "room_id", id, "host_id", host.ID)

	return game.JoinTicket{Room: room.Snapshot(), Channel: r.endpoint(id, host.ID)}, nil
}

func (r *RoomRegistry) Join(roomID string, player game.Player) (game.JoinTicket, error) {
	room, err := r.find(roomID)
	if err != nil {
		return game.JoinTicket{}, err
	}
	if err := room.Join(player); err != nil {
		return game.JoinTicket{}, err
	}
	return game.JoinTicket{Room: room.Snapshot(), Channel: r.endpoint(roomID, player.ID)}, nil
}

func (r *RoomRegistry) Leave(roomID, playerID string) error {
	room, err := r.find(roomID)
	if err != nil {
		return err
	}
	room.Leave(playerID)
	return nil
}

func (r *RoomRegistry) Get(roomID string) (game.RoomView, error) {
	room, err := r.find(roomID)
	if err != nil {
		return game.RoomView{}, err
	}
	return room.Snapshot(), nil
}

// List returns every room in creation order.
func (r *RoomRegistry) List() []game.RoomListing {
	r.mu.RLock()
	entries := lo.Values(r.rooms)
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b *roomEntry) int {
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(a.room.ID(), b.room.ID())
	})
	return lo.Map(entries, func(e *roomEntry, _ int) game.RoomListing { return e.room.Listing() })
}

func (r *RoomRegistry) UpdateConfig(roomID, requesterID string, patch game.ConfigPatch) (game.GameConfig, error) {
	room, err := r.find(roomID)
	if err != nil {
		return game.GameConfig{}, err
	}
	return room.UpdateConfig(requesterID, patch)
}

func (r *RoomRegistry) Start(roomID, requesterID string, config *game.GameConfig) error {
	room, err := r.find(roomID)
	if err != nil {
		return err
	}
	return room.Start(requesterID, config)
}

func (r *RoomRegistry) Submit(roomID, playerID string, submission game.Submission) error {
	room, err := r.find(roomID)
	if err != nil {
		return err
	}
	return room.Submit(playerID, submission)
}

func (r *RoomRegistry) Unsubmit(roomID, playerID string) error {
	room, err := r.find(roomID)
	if err != nil {
		return err
	}
	room.Unsubmit(playerID)
	return nil
}

func (r *RoomRegistry) Summary(roomID string) ([]game.ResultEntry, error) {
	room, err := r.find(roomID)
	if err != nil {
		return nil, err
	}
	return room.Summary(), nil
}

func (r *RoomRegistry) NextResult(roomID, requesterID string, cursor game.Cursor) (game.Cursor, error) {
	room, err := r.find(roomID)
	if err != nil {
		return game.Cursor{}, err
	}
	return room.NextResult(requesterID, cursor.GroupIdx, cursor.Round)
}

// TickRoom is called by the room deadline worker.
func (r *RoomRegistry) TickRoom(roomID string, now time.Time) bool {
	room, err := r.find(roomID)
	if err != nil {
		return false
	}
	return room.Tick(now)
}

// Sweep evicts rooms that have been in Summary for longer than the retention window.
func (r *RoomRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, entry := range r.rooms {
		listing := entry.room.Listing()
		if listing.State != game.Summary || now.Sub(listing.StateStartedAt) <= r.config.Retention {
			continue
		}
		entry.cancel()
		delete(r.rooms, id)
		evicted++
		r.log.Debug("Room evicted", "room_id", id)
	}
	if evicted > 0 {
		r.metrics.RoomsEvicted(evicted)
	}
	return evicted
}

func (r *RoomRegistry) OnPlayerJoined(roomID string, player game.Player) {
	r.broadcast(roomID, event.PlayerJoined, player)
}

func (r *RoomRegistry) OnPlayerLeft(roomID string, player game.Player) {
	r.broadcast(roomID, event.PlayerLeft, player)
}

func (r *RoomRegistry) OnConfigChanged(roomID string, config game.GameConfig) {
	r.broadcast(roomID, event.ConfigChanged, config)
}

// OnStateChanged sends each player only its own hand-off, other transitions are broadcast.
func (r *RoomRegistry) OnStateChanged(roomID string, change game.StateChange) {
	r.metrics.StateTransition(change.State.String())
	switch change.State {
	case game.Draw, game.Guest:
		if change.Handoff == nil {
			panic(fmt.Sprintf("hand-off must exist for %s state", change.State))
		}
		playerIDs := lo.Keys(change.Handoff)
		slices.Sort(playerIDs)
		for _, playerID := range playerIDs {
			r.send(roomID, playerID, event.StateChanged, game.PlayerHandoff{
				State:    change.State,
				Round:    change.Round,
				UserData: change.Handoff[playerID],
			})
		}
	default:
		r.broadcast(roomID, event.StateChanged, change)
	}
}

func (r *RoomRegistry) OnPlayerReadiness(roomID string, readiness game.Readiness) {
	r.broadcast(roomID, event.ReadinessChanged, readiness)
}

func (r *RoomRegistry) OnNextResult(roomID string, page game.ResultPage) {
	r.broadcast(roomID, event.NextSummary, page)
}

func (r *RoomRegistry) broadcast(roomID string, eventType event.Type, data any) {
	r.publish(event.RoomChannel(roomID), eventType, data)
}

func (r *RoomRegistry) send(roomID, playerID string, eventType event.Type, data any) {
	r.publish(event.PlayerChannel(roomID, playerID), eventType, data)
}

func (r *RoomRegistry) publish(channel string, eventType event.Type, data any) {
	r.bus.Publish(channel, event.RoomEvent{Channel: channel, Type: eventType, Data: data})
	r.metrics.EventPublished(string(eventType))
}

func (r *RoomRegistry) find(roomID string) (*game.GameRoom, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.rooms[roomID]
	if !ok {
		return nil, errors.ErrRoomNotFound
	}
	return entry.room, nil
}

func (r *RoomRegistry) endpoint(roomID, playerID string) string {
	return fmt.Sprintf("%s/ws?room=%s&user_id=%s", r.config.WsEndpoint, url.QueryEscape(roomID), url.QueryEscape(playerID))
}
