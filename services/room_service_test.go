package services

import (
	"draw-guess/domain/game"
	"draw-guess/errors"
	"draw-guess/mocks"
	"draw-guess/moderation"
	"encoding/base64"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const blankImage = "https://cdn.example.com/blank.png"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newService(t *testing.T, maxImageBytes int) (*RoomService, *mocks.MockIRoomRegistry) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := moderation.NewModerator([]string{"badger"}, '*', log)
	require.NoError(t, err)
	registry := mocks.NewMockIRoomRegistry(gomock.NewController(t))
	return NewRoomService(log, registry, &mod, blankImage, maxImageBytes), registry
}

func dataURL(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestRoomService_Create(t *testing.T) {
	req := require.New(t)
	svc, registry := newService(t, 0)
	ticket := game.JoinTicket{Room: game.RoomView{ID: "r1"}, Channel: "ws://x/ws?room=r1&user_id=h"}

	registry.EXPECT().Create(game.Player{ID: "h", Name: "Alice"}).Return(ticket, nil)

	got, err := svc.Create("h", "Alice")
	req.NoError(err)
	req.Equal(ticket, got)
}

func TestRoomService_Join_PropagatesErrors(t *testing.T) {
	req := require.New(t)
	svc, registry := newService(t, 0)

	registry.EXPECT().Join("r1", game.Player{ID: "p", Name: "Bob"}).Return(game.JoinTicket{}, errors.ErrRoomFull)

	_, err := svc.Join("r1", "p", "Bob")
	req.ErrorIs(err, errors.ErrRoomFull)
}

func TestRoomService_Submit_Text(t *testing.T) {
	req := require.New(t)
	svc, registry := newService(t, 0)

	// Given a prompt with a forbidden word
	// Then the room receives the censored text
	registry.EXPECT().
		Submit("r1", "p1", game.Submission{Kind: game.Text, Payload: "a ****** on a bike"}).
		Return(nil)

	req.NoError(svc.Submit("r1", "p1", game.Submission{Kind: game.Text, Payload: "a b4dger on a bike"}))
}

func TestRoomService_Submit_Image(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "empty payload becomes the blank image",
			payload:  "  ",
			expected: blankImage,
		},
		{
			name:     "resolved references are kept",
			payload:  "https://cdn.example.com/drawing-1.png",
			expected: "https://cdn.example.com/drawing-1.png",
		},
		{
			name:     "inline png keeps its content under the detected type",
			payload:  dataURL("application/octet-stream", pngHeader),
			expected: dataURL("image/png", pngHeader),
		},
		{
			name:     "empty inline image becomes the blank image",
			payload:  "data:image/png;base64,",
			expected: blankImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registry := newService(t, 1024)
			registry.EXPECT().
				Submit("r1", "p1", game.Submission{Kind: game.Image, Payload: tt.expected}).
				Return(nil)

			require.NoError(t, svc.Submit("r1", "p1", game.Submission{Kind: game.Image, Payload: tt.payload}))
		})
	}
}

func TestRoomService_Submit_RejectedImages(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
	}{
		{"text disguised as png", dataURL("image/png", []byte("definitely not an image")), errors.ErrUnsupportedImage},
		{"not base64", "data:image/png;base64,%%%", errors.ErrInvalidPayload},
		{"not base64 encoded", "data:image/png," + string(pngHeader), errors.ErrInvalidPayload},
		{"too large", dataURL("image/png", append(pngHeader, make([]byte, 64)...)), errors.ErrImageTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			svc, registry := newService(t, 32)
			registry.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			err := svc.Submit("r1", "p1", game.Submission{Kind: game.Image, Payload: tt.payload})
			req.ErrorIs(err, tt.err)
			req.ErrorIs(err, errors.ErrValidation)
		})
	}
}

func TestRoomService_Submit_UnknownKind(t *testing.T) {
	req := require.New(t)
	svc, registry := newService(t, 0)
	registry.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.Submit("r1", "p1", game.Submission{Kind: "video", Payload: "x"})
	req.ErrorIs(err, errors.ErrInvalidPayload)
}

func TestRoomService_Delegates(t *testing.T) {
	req := require.New(t)
	svc, registry := newService(t, 0)
	cursor := game.Cursor{GroupIdx: 1, Round: 0}

	gomock.InOrder(
		registry.EXPECT().Leave("r1", "p1").Return(nil),
		registry.EXPECT().Unsubmit("r1", "p1").Return(nil),
		registry.EXPECT().Start("r1", "h", nil).Return(errors.ErrNotHost),
		registry.EXPECT().NextResult("r1", "h", game.Cursor{}).Return(cursor, nil),
		registry.EXPECT().List().Return([]game.RoomListing{{ID: "r1"}}),
	)

	req.NoError(svc.Leave("r1", "p1"))
	req.NoError(svc.Unsubmit("r1", "p1"))
	req.ErrorIs(svc.Start("r1", "h", nil), errors.ErrNotHost)
	next, err := svc.NextResult("r1", "h", game.Cursor{})
	req.NoError(err)
	req.Equal(cursor, next)
	req.Len(svc.List(), 1)
}
