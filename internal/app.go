package internal

import (
	"context"
	"draw-guess/eventbus"
	"draw-guess/infrastructure/http/server"
	"draw-guess/moderation"
	"draw-guess/observability"
	"draw-guess/runtime"
	"draw-guess/runtime/workers"
	"draw-guess/services"
	"fmt"
	"log/slog"
	"net/http"
)

const censoredDir = "censored"

// App holds the wired server: room registry, supervised workers and HTTP handler.
type App struct {
	Handler    http.Handler
	Metrics    *observability.Metrics
	Registry   *runtime.RoomRegistry
	supervisor *workers.Supervisor
	log        *slog.Logger
}

func NewApp(log *slog.Logger, config Config) (*App, error) {
	charReplacement, err := CharacterRune(config.CharReplacement)
	if err != nil {
		return nil, err
	}
	dictionary, err := moderation.NewEmbeddedLoader().LoadAll(censoredDir)
	if err != nil {
		return nil, fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(dictionary.Words, charReplacement, log)
	if err != nil {
		return nil, fmt.Errorf("moderator initialization failed: %w", err)
	}
	log.Info(fmt.Sprintf("%d censored word(s) loaded", len(dictionary.Words)), "languages", dictionary.Languages)

	metrics := observability.NewMetrics()
	supervisor := workers.NewSupervisor(log, config.RestartInterval).WithRestartHook(metrics.WorkerRestarted)
	bus := eventbus.NewBus(log)
	registry := runtime.NewRoomRegistry(log, bus, supervisor, metrics, runtime.RegistryConfig{
		WsEndpoint:    config.WsEndpoint,
		TickInterval:  config.TickInterval,
		SweepInterval: config.SweepInterval,
		Retention:     config.RoomRetention,
		DefaultConfig: config.GameConfig(),
		BlankImage:    config.BlankImageURL,
	})
	service := services.NewRoomService(log, registry, &moderator, config.BlankImageURL, config.MaxImageBytes)

	handler := server.NewRouter(log, service, bus, metrics, server.Config{
		RequestsPerSecond: config.RequestsPerSecond,
		RequestBurst:      config.RequestBurst,
		Session: server.SessionConfig{
			BufferSize:      config.ConnectionBufferSize,
			WriteTimeout:    config.WriteTimeout,
			FramesPerSecond: config.FramesPerSecond,
			FrameBurst:      config.FrameBurst,
			AllowedOrigins:  config.Origins(),
		},
	})

	return &App{
		Handler:    handler,
		Metrics:    metrics,
		Registry:   registry,
		supervisor: supervisor,
		log:        log,
	}, nil
}

// Run starts the background workers and blocks until they are all stopped.
func (a *App) Run(ctx context.Context) {
	a.Registry.Launch(ctx)
	a.supervisor.Run(ctx)
}

// Stop cancels every room and the sweeper, Run returns once they are done.
func (a *App) Stop() {
	a.Registry.Close()
	a.supervisor.Stop()
}
