package sink

import (
	"context"
	"draw-guess/contract"
	"draw-guess/domain/event"
	"draw-guess/observability"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	pingFrame = "ping"
	pongFrame = "pong"
)

// Conn is the part of a websocket connection a session needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

var _ Conn = (*websocket.Conn)(nil)

// SessionAgent bridges one connected player to the bus.
// It listens on the room channel and on the player's private channel,
// buffers what it receives and drops events when the peer is too slow.
type SessionAgent struct {
	ID           string
	RoomID       string
	PlayerID     string
	Events       chan any
	bus          contract.IEventBus
	log          *slog.Logger
	metrics      *observability.Metrics
	limiter      *rate.Limiter
	writeTimeout time.Duration
	pongs        chan struct{}
	done         chan struct{}
	mu           sync.Mutex
	subs         map[string]string
	closeOnce    sync.Once
}

func NewSessionAgent(
	log *slog.Logger,
	bus contract.IEventBus,
	metrics *observability.Metrics,
	roomID, playerID string,
	bufferSize int,
	writeTimeout time.Duration,
	limiter *rate.Limiter,
) *SessionAgent {
	id := uuid.NewString()
	return &SessionAgent{
		ID:           id,
		RoomID:       roomID,
		PlayerID:     playerID,
		Events:       make(chan any, bufferSize),
		bus:          bus,
		log:          log.With("session_id", id, "room_id", roomID, "player_id", playerID),
		metrics:      metrics,
		limiter:      limiter,
		writeTimeout: writeTimeout,
		pongs:        make(chan struct{}, 1),
		done:         make(chan struct{}),
		subs:         make(map[string]string, 2),
	}
}

// Open subscribes the room channel and the private channel.
func (a *SessionAgent) Open() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, channel := range []string{event.RoomChannel(a.RoomID), event.PlayerChannel(a.RoomID, a.PlayerID)} {
		a.subs[channel] = a.bus.Subscribe(channel, a.Consume)
	}
	a.metrics.SessionOpened()
}

// Consume is called by the bus
// Redirect the payload through the session buffer
// The write pump will take it from now
func (a *SessionAgent) Consume(payload any) {
	select {
	case <-a.done:
		return
	default:
	}
	select {
	case a.Events <- payload:
	default:
		a.log.Debug("Session buffer full, event dropped")
		a.metrics.EventDropped()
	}
}

// Close unsubscribes both channels, only the first call has an effect.
func (a *SessionAgent) Close() {
	a.closeOnce.Do(func() {
		close(a.done)
		a.mu.Lock()
		defer a.mu.Unlock()
		for channel, id := range a.subs {
			a.bus.Unsubscribe(channel, id)
		}
		clear(a.subs)
		a.metrics.SessionClosed()
	})
}

// Serve pumps events to conn until the peer disconnects or ctx is canceled.
// conn is closed and the session unsubscribed when Serve returns.
func (a *SessionAgent) Serve(ctx context.Context, conn Conn) error {
	a.Open()
	defer a.Close()
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.readPump(ctx, cancel, conn)
	return a.writePump(ctx, conn)
}

func (a *SessionAgent) readPump(ctx context.Context, cancel context.CancelFunc, conn Conn) {
	defer cancel()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				a.log.Debug("Peer disconnected", "error", err)
			}
			return
		}
		if a.limiter != nil && !a.limiter.Allow() {
			a.metrics.FrameRejected()
			continue
		}
		if string(data) == pingFrame {
			select {
			case a.pongs <- struct{}{}:
			default:
			}
		}
	}
}

func (a *SessionAgent) writePump(ctx context.Context, conn Conn) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.pongs:
			if err := a.write(conn, []byte(pongFrame)); err != nil {
				return err
			}
		case payload := <-a.Events:
			data, err := json.Marshal(payload)
			if err != nil {
				a.log.Error("Cannot encode event", "error", err)
				continue
			}
			if err := a.write(conn, data); err != nil {
				return err
			}
		}
	}
}

func (a *SessionAgent) write(conn Conn, data []byte) error {
	if a.writeTimeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(a.writeTimeout)); err != nil {
			return err
		}
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
