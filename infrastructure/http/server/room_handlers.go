package server

import (
	"draw-guess/domain/game"
	"draw-guess/errors"
	"draw-guess/services"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RoomHandlers exposes the room service over REST.
type RoomHandlers struct {
	service services.IRoomService
	log     *slog.Logger
}

func NewRoomHandlers(log *slog.Logger, service services.IRoomService) *RoomHandlers {
	return &RoomHandlers{service: service, log: log}
}

func (h *RoomHandlers) Routes(r chi.Router) {
	r.Post("/", h.CreateRoom)
	r.Get("/", h.ListRooms)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetRoom)
		r.Patch("/config", h.UpdateConfig)
		r.Put("/join", h.JoinRoom)
		r.Put("/start", h.StartGame)
		r.Put("/submit", h.Submit)
		r.Get("/summary", h.Summary)
		r.Patch("/{userID}/unsubmit", h.Unsubmit)
		r.Patch("/{userID}/leave", h.Leave)
		r.Get("/{userID}/request_result", h.RequestResult)
	})
}

func (h *RoomHandlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	ticket, err := h.service.Create(req.UserID, req.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (h *RoomHandlers) ListRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{List: h.service.List()})
}

func (h *RoomHandlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *RoomHandlers) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	config, err := h.service.UpdateConfig(chi.URLParam(r, "id"), req.UserID, req.Config.toDomain())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, config)
}

func (h *RoomHandlers) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	ticket, err := h.service.Join(chi.URLParam(r, "id"), req.UserID, req.Username)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (h *RoomHandlers) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.service.Start(chi.URLParam(r, "id"), req.UserID, req.gameConfig()); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: true})
}

func (h *RoomHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	submission := game.Submission{Kind: game.Kind(req.Payload.Type), Payload: req.Payload.Data}
	if err := h.service.Submit(chi.URLParam(r, "id"), req.UserID, submission); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: true})
}

func (h *RoomHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Summary(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Data: results})
}

func (h *RoomHandlers) Unsubmit(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unsubmit(chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: true})
}

func (h *RoomHandlers) Leave(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Leave(chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: true})
}

func (h *RoomHandlers) RequestResult(w http.ResponseWriter, r *http.Request) {
	cursor, err := parseCursor(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	next, err := h.service.NextResult(chi.URLParam(r, "id"), chi.URLParam(r, "userID"), cursor)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func parseCursor(r *http.Request) (game.Cursor, error) {
	query := r.URL.Query()
	groupIdx, err := strconv.Atoi(query.Get("groupIdx"))
	if err != nil {
		return game.Cursor{}, errors.Validation(fmt.Errorf("groupIdx: %w", err))
	}
	round, err := strconv.Atoi(query.Get("round"))
	if err != nil {
		return game.Cursor{}, errors.Validation(fmt.Errorf("round: %w", err))
	}
	return game.Cursor{GroupIdx: groupIdx, Round: round}, nil
}

func (h *RoomHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		h.log.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, err)
}
