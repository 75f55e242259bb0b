package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Code is the stable, client-facing identifier of a failure class.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN_ERROR"
	CodeNotFound     Code = "ENTITY_NOT_FOUND"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeInternal     Code = "INTERNAL_SYS_ERROR"
)

// Taxonomy roots. Every domain error wraps exactly one of them.
var (
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrNotFound     = fmt.Errorf("not found")
	ErrValidation   = fmt.Errorf("validation failed")
	ErrInternal     = fmt.Errorf("internal error")
)

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrInvalidPayload = fmt.Errorf("%w: invalid payload", ErrValidation)
)

// Room and player errors.
var (
	ErrNotHost             = fmt.Errorf("%w: only host can perform this action", ErrUnauthorized)
	ErrRoomNotFound        = fmt.Errorf("%w: ROOM_NOT_FOUND", ErrNotFound)
	ErrPlayerNotFound      = fmt.Errorf("%w: USER NOT FOUND IN ROOM", ErrNotFound)
	ErrResultNotFound      = fmt.Errorf("%w: NOT FOUND RESULT", ErrNotFound)
	ErrGameStarted         = fmt.Errorf("%w: cannot join when game started", ErrValidation)
	ErrRoomFull            = fmt.Errorf("%w: room is full", ErrValidation)
	ErrPlayerAlreadyJoined = fmt.Errorf("%w: player already in room", ErrValidation)
	ErrAlreadyStarted      = fmt.Errorf("%w: game already started", ErrValidation)
	ErrNotEnoughPlayers    = fmt.Errorf("%w: at least 3 players are required", ErrValidation)
	ErrRoundClosed         = fmt.Errorf("%w: no round is accepting submissions", ErrValidation)
	ErrUnsupportedImage    = fmt.Errorf("%w: payload is not an image", ErrValidation)
	ErrImageTooLarge       = fmt.Errorf("%w: image is too large", ErrValidation)
)

// Error is the structured failure surfaced to callers: a stable code and a human message.
type Error struct {
	Code Code   `json:"code"`
	Msg  string `json:"msg,omitempty"`
	err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.err }

// CodeOf classifies err against the taxonomy roots.
func CodeOf(err error) Code {
	var structured *Error
	switch {
	case err == nil:
		return ""
	case stderrors.As(err, &structured):
		return structured.Code
	case stderrors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case stderrors.Is(err, ErrNotFound):
		return CodeNotFound
	case stderrors.Is(err, ErrValidation):
		return CodeValidation
	case stderrors.Is(err, ErrInternal):
		return CodeInternal
	default:
		return CodeUnknown
	}
}

// ToError converts any error into the structured form, keeping the original message.
func ToError(err error) *Error {
	var structured *Error
	if stderrors.As(err, &structured) {
		return structured
	}
	return &Error{Code: CodeOf(err), Msg: err.Error(), err: err}
}

// Validation builds a validation failure from a lower-level cause (schema, decoding...).
func Validation(cause error) error {
	return &Error{Code: CodeValidation, Msg: cause.Error(), err: fmt.Errorf("%w: %w", ErrValidation, cause)}
}

// MapToHTTPStatus translates a failure into the status code returned by the HTTP layer.
func MapToHTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeInternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Is(err, target error) bool { return stderrors.Is(err, target) }

