package internal

import (
	"draw-guess/domain/game"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	WsEndpoint            string        `env:"WS_ENDPOINT,required=true"`
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
	TickInterval          time.Duration `env:"TICK_INTERVAL,default=1s"`
	SweepInterval         time.Duration `env:"SWEEP_INTERVAL,default=5s"`
	RoomRetention         time.Duration `env:"ROOM_RETENTION,default=1h"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ConnectionBufferSize  int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	FramesPerSecond       float64       `env:"FRAMES_PER_SECOND,default=1"`
	FrameBurst            int           `env:"FRAME_BURST,default=5"`
	RequestsPerSecond     float64       `env:"REQUESTS_PER_SECOND,default=20"`
	RequestBurst          int           `env:"REQUEST_BURST,default=40"`
	AllowedOrigins        string        `env:"ALLOWED_ORIGINS"`
	BlankImageURL         string        `env:"BLANK_IMAGE_URL,required=true"`
	CharReplacement       string        `env:"CHARACTER_REPLACEMENT,default=*"`
	MaxImageBytes         int           `env:"MAX_IMAGE_BYTES,default=5242880"`
	DefaultMaxPlayers     int           `env:"DEFAULT_MAX_PLAYERS,default=8"`
	DefaultReviewDuration float64       `env:"DEFAULT_REVIEW_DURATION,default=10"`
	DefaultDrawDuration   float64       `env:"DEFAULT_DRAW_DURATION,default=60"`
	DefaultGuestDuration  float64       `env:"DEFAULT_GUEST_DURATION,default=30"`
}

// GameConfig is the configuration every new room starts with.
func (c Config) GameConfig() game.GameConfig {
	return game.GameConfig{
		MaxPlayers:     c.DefaultMaxPlayers,
		ReviewDuration: c.DefaultReviewDuration,
		DrawDuration:   c.DefaultDrawDuration,
		GuestDuration:  c.DefaultGuestDuration,
	}
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origins splits ALLOWED_ORIGINS, an empty value allows every origin.
func (c Config) Origins() []string {
	return lo.FilterMap(strings.Split(c.AllowedOrigins, ","), func(o string, _ int) (string, bool) {
		o = strings.TrimSpace(o)
		return o, o != ""
	})
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
