package game

import (
	"draw-guess/errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

// MinPlayers is the smallest roster able to form a Question, Guest, Summary chain.
const MinPlayers = 3

type Options struct {
	Config     *GameConfig
	Delegate   RoomDelegate
	Clock      func() time.Time
	BlankImage string
	Log        *slog.Logger
}

// GameRoom is the state machine of a single room.
// Every exported method runs to completion under the room lock, delegate
// notifications are queued while mutating and delivered in order before it returns.
type GameRoom struct {
	mu             sync.Mutex
	id             string
	hostID         string
	state          State
	round          int
	players        []Player
	fixedOrder     []string
	rotatingOrder  []string
	submissions    map[string][]*Submission
	readiness      map[string]bool
	deadline       *time.Time
	stateStartedAt time.Time
	results        []ResultEntry
	config         GameConfig
	delegate       RoomDelegate
	outbox         []func(RoomDelegate)
	now            func() time.Time
	blankImage     string
	log            *slog.Logger
}

func NewGameRoom(id string, host Player, opts Options) *GameRoom {
	if opts.Delegate == nil {
		opts.Delegate = noopDelegate{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}
	config := DefaultConfig()
	if opts.Config != nil {
		config = *opts.Config
	}
	host.IsHost = true
	return &GameRoom{
		id:             id,
		hostID:         host.ID,
		state:          Pending,
		players:        []Player{host},
		submissions:    make(map[string][]*Submission),
		readiness:      map[string]bool{host.ID: true},
		stateStartedAt: opts.Clock(),
		config:         config,
		delegate:       opts.Delegate,
		now:            opts.Clock,
		blankImage:     opts.BlankImage,
		log:            opts.Log.With("room_id", id),
	}
}

func (r *GameRoom) ID() string { return r.id }

// release delivers queued notifications then unlocks the room.
func (r *GameRoom) release() {
	outbox := r.outbox
	r.outbox = nil
	for _, notify := range outbox {
		notify(r.delegate)
	}
	r.mu.Unlock()
}

func (r *GameRoom) emit(notify func(RoomDelegate)) {
	r.outbox = append(r.outbox, notify)
}

// Join appends a player to the roster while the room is still pending.
// The capacity check compares the roster size before the join, so MaxPlayers+1 players fit.
func (r *GameRoom) Join(player Player) error {
	r.mu.Lock()
	defer r.release()

	if r.state != Pending {
		r.log.Error("Cannot join when game started", "player_id", player.ID)
		return errors.ErrGameStarted
	}
	if len(r.players) > r.config.MaxPlayers {
		r.log.Error("Room is full", "player_id", player.ID)
		return errors.ErrRoomFull
	}
	if r.indexOf(player.ID) >= 0 {
		r.log.Error("Player already joined", "player_id", player.ID)
		return errors.ErrPlayerAlreadyJoined
	}

	player.IsHost = false
	r.players = append(r.players, player)
	r.readiness[player.ID] = true
	r.emit(func(d RoomDelegate) { d.OnPlayerJoined(r.id, player) })
	return nil
}

// Leave removes a player from the roster, an unknown player is ignored.
// Seats and readiness are left untouched so a game in progress keeps its shape.
func (r *GameRoom) Leave(playerID string) {
	r.mu.Lock()
	defer r.release()

	idx := r.indexOf(playerID)
	if idx < 0 {
		return
	}
	player := r.players[idx]
	r.players = slices.Delete(r.players, idx, idx+1)
	r.emit(func(d RoomDelegate) { d.OnPlayerLeft(r.id, player) })
}

func (r *GameRoom) UpdateConfig(requesterID string, patch ConfigPatch) (GameConfig, error) {
	r.mu.Lock()
	defer r.release()

	if requesterID != r.hostID {
		r.log.Error(fmt.Sprintf("user %s who request config update is not host", requesterID))
		return GameConfig{}, errors.ErrNotHost
	}
	r.config = r.config.Merge(patch)
	config := r.config
	r.emit(func(d RoomDelegate) { d.OnConfigChanged(r.id, config) })
	return config, nil
}

// Start freezes the seating order and opens the first round.
func (r *GameRoom) Start(requesterID string, config *GameConfig) error {
	r.mu.Lock()
	defer r.release()

	if requesterID != r.hostID {
		r.log.Error(fmt.Sprintf("user %s who request start is not host", requesterID))
		return errors.ErrNotHost
	}
	if r.state != Pending {
		return errors.ErrAlreadyStarted
	}
	if len(r.players) < MinPlayers {
		return errors.ErrNotEnoughPlayers
	}
	if config != nil {
		r.config = *config
	}

	ids := lo.Map(r.players, func(p Player, _ int) string { return p.ID })
	r.fixedOrder = slices.Clone(ids)
	r.rotatingOrder = slices.Clone(ids)
	r.readiness = make(map[string]bool, len(ids))
	for _, id := range ids {
		r.submissions[id] = make([]*Submission, len(ids))
		r.readiness[id] = false
	}
	r.log.Debug("Game started", "fixed_order", r.fixedOrder)
	r.advanceRound(r.now())
	return nil
}

// Submit stores the player's data for the current round and marks them ready.
// When everyone is ready the room advances without waiting for the deadline.
func (r *GameRoom) Submit(playerID string, submission Submission) error {
	r.mu.Lock()
	defer r.release()

	if r.state == Pending || r.state == Summary {
		return errors.ErrRoundClosed
	}
	slots, ok := r.submissions[playerID]
	if !ok {
		return errors.ErrPlayerNotFound
	}
	slots[r.round-1] = &submission
	r.log.Debug(fmt.Sprintf("user %s submit data", playerID), "round", r.round, "kind", submission.Kind)
	r.setReady(playerID, true)
	return nil
}

// Unsubmit retracts readiness, the stored submission is kept.
func (r *GameRoom) Unsubmit(playerID string) {
	r.mu.Lock()
	defer r.release()

	r.setReady(playerID, false)
}

// Tick advances the room once its deadline has passed.
// It reports whether the room still needs ticking.
func (r *GameRoom) Tick(now time.Time) bool {
	r.mu.Lock()
	defer r.release()

	if r.deadline != nil && now.After(*r.deadline) {
		r.log.Debug("Round deadline exceeded", "round", r.round)
		r.advanceRound(now)
	}
	return r.state != Summary
}

// NextResult reveals one result entry and returns the cursor of the following one.
func (r *GameRoom) NextResult(requesterID string, groupIdx, round int) (Cursor, error) {
	r.mu.Lock()
	defer r.release()

	if requesterID != r.hostID {
		return Cursor{}, errors.ErrNotHost
	}
	n := len(r.fixedOrder)
	if groupIdx < 0 || round < 0 || groupIdx >= n || round >= len(r.results) {
		return Cursor{}, errors.ErrResultNotFound
	}
	idx := round + groupIdx*n
	if idx >= len(r.results) {
		return Cursor{}, errors.ErrResultNotFound
	}

	next := Cursor{GroupIdx: groupIdx, Round: round + 1}
	if next.Round >= n {
		next = Cursor{GroupIdx: groupIdx + 1, Round: 0}
		if next.GroupIdx >= n {
			next = EndCursor
		}
	}
	page := ResultPage{Result: r.results[idx], Next: next}
	r.emit(func(d RoomDelegate) { d.OnNextResult(r.id, page) })
	return next, nil
}

func (r *GameRoom) Snapshot() RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()

	view := RoomView{
		ID:             r.id,
		State:          r.state,
		Round:          r.round,
		Players:        slices.Clone(r.players),
		ShowOrder:      slices.Clone(r.fixedOrder),
		Config:         r.config,
		HostID:         r.hostID,
		StateStartedAt: r.stateStartedAt,
	}
	if view.ShowOrder == nil {
		view.ShowOrder = []string{}
	}
	if r.deadline != nil {
		deadline := *r.deadline
		view.Deadline = &deadline
	}
	return view
}

func (r *GameRoom) Listing() RoomListing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RoomListing{ID: r.id, State: r.state, StateStartedAt: r.stateStartedAt}
}

func (r *GameRoom) Config() GameConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// Summary returns the results built when the game ended, empty before that.
func (r *GameRoom) Summary() []ResultEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.results) == 0 {
		return []ResultEntry{}
	}
	return slices.Clone(r.results)
}

// SubmissionsByPlayer returns every stored slot per player, nil where nothing was handed in.
func (r *GameRoom) SubmissionsByPlayer() map[string][]*Submission {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string][]*Submission, len(r.submissions))
	for id, slots := range r.submissions {
		out[id] = lo.Map(slots, func(s *Submission, _ int) *Submission {
			if s == nil {
				return nil
			}
			return lo.ToPtr(*s)
		})
	}
	return out
}

func (r *GameRoom) indexOf(playerID string) int {
	return slices.IndexFunc(r.players, func(p Player) bool { return p.ID == playerID })
}

func (r *GameRoom) setReady(playerID string, ready bool) {
	if _, ok := r.readiness[playerID]; !ok {
		return
	}
	r.readiness[playerID] = ready
	if ready && r.allReady() {
		r.advanceRound(r.now())
		return
	}
	readiness := Readiness{PlayerID: playerID, Ready: ready}
	r.emit(func(d RoomDelegate) { d.OnPlayerReadiness(r.id, readiness) })
}

func (r *GameRoom) allReady() bool {
	for _, ready := range r.readiness {
		if !ready {
			return false
		}
	}
	return true
}

func (r *GameRoom) advanceRound(now time.Time) {
	r.round++
	r.stateStartedAt = now
	for id := range r.readiness {
		r.readiness[id] = false
	}

	var handoff map[string]Submission
	n := len(r.fixedOrder)
	switch r.round {
	case 1:
		r.state = Question
		r.setDeadline(now, r.config.GuestDuration)
	case n:
		r.state = Guest
		r.setDeadline(now, r.config.GuestDuration)
		r.rotate()
		handoff = r.handoff()
	case n + 1:
		r.state = Summary
		r.deadline = nil
		r.rotate()
		r.buildResults()
	default:
		r.state = Draw
		r.setDeadline(now, r.config.ReviewDuration+r.config.DrawDuration)
		r.rotate()
		handoff = r.handoff()
	}

	r.log.Debug(fmt.Sprintf("change to %s state", r.state), "round", r.round, "order", r.rotatingOrder)
	change := StateChange{State: r.state, Round: r.round, Handoff: handoff}
	r.emit(func(d RoomDelegate) { d.OnStateChanged(r.id, change) })
}

func (r *GameRoom) setDeadline(now time.Time, seconds float64) {
	deadline := now.Add(time.Duration((seconds + 1) * float64(time.Second)))
	r.deadline = &deadline
}

// rotate moves the front seat holder to the back.
func (r *GameRoom) rotate() {
	if len(r.rotatingOrder) == 0 {
		panic("rotating order must not be empty")
	}
	r.rotatingOrder = append(slices.Clone(r.rotatingOrder[1:]), r.rotatingOrder[0])
}

// handoff maps each new seat holder to what the previous holder of that seat handed in last round.
func (r *GameRoom) handoff() map[string]Submission {
	n := len(r.rotatingOrder)
	prevOrder := append([]string{r.rotatingOrder[n-1]}, r.rotatingOrder[:n-1]...)

	out := make(map[string]Submission, n)
	for i, prevID := range prevOrder {
		currID := r.rotatingOrder[i]
		slots, ok := r.submissions[prevID]
		if ok && slots[r.round-2] != nil {
			out[currID] = *slots[r.round-2]
		} else {
			out[currID] = r.filler()
		}
		r.log.Debug(fmt.Sprintf("[%d]: send round data %s --> %s", r.round, prevID, currID))
	}
	return out
}

// filler stands in for a missing submission: text at the prompt and guess boundaries, a blank canvas otherwise.
func (r *GameRoom) filler() Submission {
	if r.round == 1 || r.round == len(r.fixedOrder) {
		return Submission{Kind: Text, Payload: ""}
	}
	return Submission{Kind: Image, Payload: r.blankImage}
}

func (r *GameRoom) buildResults() {
	n := len(r.fixedOrder)
	if len(r.rotatingOrder) != n {
		panic("rotating and fixed orders diverged")
	}
	results := make([]ResultEntry, 0, n*n)
	for g, owner := range r.fixedOrder {
		chain := append(slices.Clone(r.fixedOrder[g:]), r.fixedOrder[:g]...)
		for j, holderID := range chain {
			entry := ResultEntry{GroupOwnerID: owner, HolderID: holderID, SeatIndex: j}
			if s := r.submissions[holderID][j]; s != nil {
				entry.Submission = lo.ToPtr(*s)
			}
			results = append(results, entry)
		}
	}
	r.results = results
}
