package server

import (
	"draw-guess/domain/game"
	"draw-guess/errors"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const maxBodyBytes = 8 << 20

// Player ids end up in bus channel names, so they cannot carry separators or wildcards.
type playerRequest struct {
	UserID   string `json:"user_id" validate:"required,max=64,excludesall=.*>"`
	Username string `json:"username" validate:"required,max=32"`
}

type configRequest struct {
	UserID string      `json:"user_id" validate:"required"`
	Config configPatch `json:"config"`
}

type configPatch struct {
	MaxPlayers     *int     `json:"maxPlayer" validate:"omitempty,min=3"`
	ReviewDuration *float64 `json:"reviewDuration" validate:"omitempty,gt=0"`
	DrawDuration   *float64 `json:"drawDuration" validate:"omitempty,gt=0"`
	GuestDuration  *float64 `json:"guestDuration" validate:"omitempty,gt=0"`
}

func (p configPatch) toDomain() game.ConfigPatch {
	return game.ConfigPatch{
		MaxPlayers:     p.MaxPlayers,
		ReviewDuration: p.ReviewDuration,
		DrawDuration:   p.DrawDuration,
		GuestDuration:  p.GuestDuration,
	}
}

type fullConfig struct {
	MaxPlayers     int     `json:"maxPlayer" validate:"min=3"`
	ReviewDuration float64 `json:"reviewDuration" validate:"gt=0"`
	DrawDuration   float64 `json:"drawDuration" validate:"gt=0"`
	GuestDuration  float64 `json:"guestDuration" validate:"gt=0"`
}

type startRequest struct {
	UserID string      `json:"user_id" validate:"required"`
	Config *fullConfig `json:"config,omitempty"`
}

func (r startRequest) gameConfig() *game.GameConfig {
	if r.Config == nil {
		return nil
	}
	return &game.GameConfig{
		MaxPlayers:     r.Config.MaxPlayers,
		ReviewDuration: r.Config.ReviewDuration,
		DrawDuration:   r.Config.DrawDuration,
		GuestDuration:  r.Config.GuestDuration,
	}
}

type submitRequest struct {
	UserID  string  `json:"user_id" validate:"required"`
	Payload payload `json:"payload"`
}

type payload struct {
	Type string `json:"type" validate:"required,oneof=text image"`
	Data string `json:"data"`
}

type statusResponse struct {
	Status bool `json:"status"`
}

type listResponse struct {
	List []game.RoomListing `json:"list"`
}

type summaryResponse struct {
	Data []game.ResultEntry `json:"data"`
}

// decode reads a JSON body into dst and validates it.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.Validation(fmt.Errorf("malformed body: %w", err))
	}
	if err := validate.Struct(dst); err != nil {
		return errors.Validation(err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	structured := errors.ToError(err)
	writeJSON(w, errors.MapToHTTPStatus(err), structured)
}
