package server

import (
	"draw-guess/contract"
	"draw-guess/observability"
	"draw-guess/services"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerSecond float64
	RequestBurst      int
	Session           SessionConfig
}

// NewRouter mounts the REST API, the websocket endpoint, health and metrics.
func NewRouter(
	log *slog.Logger,
	service services.IRoomService,
	bus contract.IEventBus,
	metrics *observability.Metrics,
	config Config,
) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(CORSMiddleware(config.Session.AllowedOrigins))

	rooms := NewRoomHandlers(log, service)
	router.Route("/api/rooms", func(r chi.Router) {
		r.Use(RequestLogger(log))
		if config.RequestsPerSecond > 0 {
			r.Use(RateLimitMiddleware(NewIPRateLimiter(rate.Limit(config.RequestsPerSecond), config.RequestBurst)))
		}
		rooms.Routes(r)
	})

	router.Method(http.MethodGet, "/ws", NewSessionHandler(log, service, bus, metrics, config.Session))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	return router
}
