package services

import (
	"draw-guess/contract"
	"draw-guess/domain/game"
	"draw-guess/domain/mimetypes"
	"draw-guess/errors"
	"draw-guess/moderation"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type IRoomService interface {
	Create(hostID, username string) (game.JoinTicket, error)
	Join(roomID, playerID, username string) (game.JoinTicket, error)
	Leave(roomID, playerID string) error
	Get(roomID string) (game.RoomView, error)
	List() []game.RoomListing
	UpdateConfig(roomID, requesterID string, patch game.ConfigPatch) (game.GameConfig, error)
	Start(roomID, requesterID string, config *game.GameConfig) error
	Submit(roomID, playerID string, submission game.Submission) error
	Unsubmit(roomID, playerID string) error
	Summary(roomID string) ([]game.ResultEntry, error)
	NextResult(roomID, requesterID string, cursor game.Cursor) (game.Cursor, error)
}

type RoomService struct {
	registry      contract.IRoomRegistry
	moderator     *moderation.Moderator
	blankImage    string
	maxImageBytes int
	log           *slog.Logger
}

func NewRoomService(
	log *slog.Logger,
	registry contract.IRoomRegistry,
	moderator *moderation.Moderator,
	blankImage string,
	maxImageBytes int,
) *RoomService {
	return &RoomService{
		registry:      registry,
		moderator:     moderator,
		blankImage:    blankImage,
		maxImageBytes: maxImageBytes,
		log:           log,
	}
}

func (s *RoomService) Create(hostID, username string) (game.JoinTicket, error) {
	return s.registry.Create(game.Player{ID: hostID, Name: username})
}

func (s *RoomService) Join(roomID, playerID, username string) (game.JoinTicket, error) {
	ticket, err := s.registry.Join(roomID, game.Player{ID: playerID, Name: username})
	if err != nil {
		s.log.Debug("Join refused", "room_id", roomID, "player_id", playerID, "error", err)
	}
	return ticket, err
}

func (s *RoomService) Leave(roomID, playerID string) error {
	return s.registry.Leave(roomID, playerID)
}

func (s *RoomService) Get(roomID string) (game.RoomView, error) {
	return s.registry.Get(roomID)
}

func (s *RoomService) List() []game.RoomListing {
	return s.registry.List()
}

func (s *RoomService) UpdateConfig(roomID, requesterID string, patch game.ConfigPatch) (game.GameConfig, error) {
	return s.registry.UpdateConfig(roomID, requesterID, patch)
}

func (s *RoomService) Start(roomID, requesterID string, config *game.GameConfig) error {
	return s.registry.Start(roomID, requesterID, config)
}

// Submit cleans the payload before handing it to the room.
// Text is moderated, inline images are checked and empty images become the blank image.
func (s *RoomService) Submit(roomID, playerID string, submission game.Submission) error {
	var err error
	switch submission.Kind {
	case game.Text:
		submission.Payload = s.censor(roomID, playerID, submission.Payload)
	case game.Image:
		if submission.Payload, err = s.resolveImage(submission.Payload); err != nil {
			s.log.Debug("Image rejected", "room_id", roomID, "player_id", playerID, "error", err)
			return err
		}
	default:
		return fmt.Errorf("%w: unknown submission type %q", errors.ErrInvalidPayload, submission.Kind)
	}
	return s.registry.Submit(roomID, playerID, submission)
}

func (s *RoomService) Unsubmit(roomID, playerID string) error {
	return s.registry.Unsubmit(roomID, playerID)
}

func (s *RoomService) Summary(roomID string) ([]game.ResultEntry, error) {
	return s.registry.Summary(roomID)
}

func (s *RoomService) NextResult(roomID, requesterID string, cursor game.Cursor) (game.Cursor, error) {
	return s.registry.NextResult(roomID, requesterID, cursor)
}

func (s *RoomService) censor(roomID, playerID, text string) string {
	if s.moderator == nil {
		return text
	}
	censored, words := s.moderator.Censor(text)
	if len(words) > 0 {
		s.log.Info(fmt.Sprintf("%d word(s) censored", len(words)),
			"room_id", roomID, "player_id", playerID, "lang", moderation.DetectLanguage(text))
	}
	return censored
}

// resolveImage accepts image references and base64 data URLs of drawings.
func (s *RoomService) resolveImage(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return s.blankImage, nil
	}
	if !strings.HasPrefix(payload, "data:") {
		return payload, nil
	}

	header, encoded, ok := strings.Cut(strings.TrimPrefix(payload, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", fmt.Errorf("%w: image data URL must be base64 encoded", errors.ErrInvalidPayload)
	}
	if s.maxImageBytes > 0 && base64.StdEncoding.DecodedLen(len(encoded)) > s.maxImageBytes+2 {
		return "", errors.ErrImageTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if s.maxImageBytes > 0 && len(raw) > s.maxImageBytes {
		return "", errors.ErrImageTooLarge
	}
	if len(raw) == 0 {
		return s.blankImage, nil
	}

	detected, ok := mimetypes.IsDrawing(mimetype.Detect(raw).String())
	if !ok {
		return "", fmt.Errorf("%w: detected %s", errors.ErrUnsupportedImage, detected)
	}
	return fmt.Sprintf("data:%s;base64,%s", detected, encoded), nil
}
