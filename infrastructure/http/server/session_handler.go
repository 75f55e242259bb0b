package server

import (
	"draw-guess/contract"
	"draw-guess/domain/game"
	"draw-guess/errors"
	"draw-guess/observability"
	"draw-guess/services"
	"draw-guess/sink"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

type SessionConfig struct {
	BufferSize      int
	WriteTimeout    time.Duration
	FramesPerSecond float64
	FrameBurst      int
	AllowedOrigins  []string
}

// SessionHandler upgrades a player connection and attaches a session agent to it.
type SessionHandler struct {
	service  services.IRoomService
	bus      contract.IEventBus
	metrics  *observability.Metrics
	config   SessionConfig
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewSessionHandler(
	log *slog.Logger,
	service services.IRoomService,
	bus contract.IEventBus,
	metrics *observability.Metrics,
	config SessionConfig,
) *SessionHandler {
	return &SessionHandler{
		service: service,
		bus:     bus,
		metrics: metrics,
		config:  config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || originAllowed(config.AllowedOrigins, origin)
			},
		},
		log: log,
	}
}

// ServeHTTP expects ?room=<id>&user_id=<id> of a player already in the room.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	playerID := r.URL.Query().Get("user_id")
	if roomID == "" || playerID == "" {
		writeError(w, errors.Validation(fmt.Errorf("room and user_id are required")))
		return
	}

	view, err := h.service.Get(roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !lo.ContainsBy(view.Players, func(p game.Player) bool { return p.ID == playerID }) {
		writeError(w, errors.ErrPlayerNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the client
		h.log.Debug("Websocket upgrade failed", "room_id", roomID, "player_id", playerID, "error", err)
		return
	}

	var limiter *rate.Limiter
	if h.config.FramesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(h.config.FramesPerSecond), h.config.FrameBurst)
	}
	agent := sink.NewSessionAgent(h.log, h.bus, h.metrics, roomID, playerID, h.config.BufferSize, h.config.WriteTimeout, limiter)
	h.log.Info("Session opened", "session_id", agent.ID, "room_id", roomID, "player_id", playerID)

	if err := agent.Serve(r.Context(), conn); err != nil {
		h.log.Debug("Session ended", "session_id", agent.ID, "error", err)
		return
	}
	h.log.Info("Session closed", "session_id", agent.ID, "room_id", roomID, "player_id", playerID)
}
