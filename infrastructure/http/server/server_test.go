package server

import (
	"bytes"
	"context"
	"draw-guess/domain/event"
	"draw-guess/domain/game"
	"draw-guess/eventbus"
	"draw-guess/moderation"
	"draw-guess/observability"
	"draw-guess/runtime"
	"draw-guess/runtime/workers"
	"draw-guess/services"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	bus *eventbus.Bus
}

func newTestServer(t *testing.T, config Config) *testServer {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	bus := eventbus.NewBus(log)
	metrics := observability.NewMetrics()
	registry := runtime.NewRoomRegistry(log, bus, workers.NewSupervisor(log, time.Millisecond), metrics, runtime.RegistryConfig{
		WsEndpoint:    "ws://test",
		TickInterval:  50 * time.Millisecond,
		SweepInterval: time.Minute,
		Retention:     time.Hour,
		DefaultConfig: game.DefaultConfig(),
		BlankImage:    "blank.png",
	})
	registry.Launch(ctx)
	t.Cleanup(registry.Close)

	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	require.NoError(t, err)
	service := services.NewRoomService(log, registry, &moderator, "blank.png", 1024)

	srv := httptest.NewServer(NewRouter(log, service, bus, metrics, config))
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, bus: bus}
}

func (s *testServer) call(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeAs[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func (s *testServer) createRoom(t *testing.T, hostID string, guests ...string) string {
	t.Helper()
	status, body := s.call(t, http.MethodPost, "/api/rooms", map[string]string{"user_id": hostID, "username": hostID})
	require.Equal(t, http.StatusCreated, status, string(body))
	roomID := decodeAs[game.JoinTicket](t, body).Room.ID
	for _, guest := range guests {
		status, body := s.call(t, http.MethodPut, "/api/rooms/"+roomID+"/join", map[string]string{"user_id": guest, "username": guest})
		require.Equal(t, http.StatusOK, status, string(body))
	}
	return roomID
}

func TestRouter_CreateAndGetRoom(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{})

	// When a host creates a room
	status, body := srv.call(t, http.MethodPost, "/api/rooms", map[string]string{"user_id": "h", "username": "Alice"})

	// Then the ticket points to the websocket of the room
	req.Equal(http.StatusCreated, status)
	ticket := decodeAs[game.JoinTicket](t, body)
	req.Equal(fmt.Sprintf("ws://test/ws?room=%s&user_id=h", ticket.Room.ID), ticket.Channel)
	req.Equal(game.Pending, ticket.Room.State)

	status, body = srv.call(t, http.MethodGet, "/api/rooms/"+ticket.Room.ID, nil)
	req.Equal(http.StatusOK, status)
	view := decodeAs[game.RoomView](t, body)
	req.Equal("h", view.HostID)
	req.Len(view.Players, 1)

	status, body = srv.call(t, http.MethodGet, "/api/rooms", nil)
	req.Equal(http.StatusOK, status)
	req.Len(decodeAs[listResponse](t, body).List, 1)
}

func TestRouter_Errors(t *testing.T) {
	srv := newTestServer(t, Config{})
	roomID := srv.createRoom(t, "h", "p1")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown room", http.MethodGet, "/api/rooms/nope", nil, http.StatusNotFound, "ENTITY_NOT_FOUND"},
		{"wildcard player id", http.MethodPut, "/api/rooms/" + roomID + "/join", map[string]string{"user_id": "p.>", "username": "sneaky"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing username", http.MethodPost, "/api/rooms", map[string]string{"user_id": "x"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"malformed body", http.MethodPut, "/api/rooms/" + roomID + "/join", "not an object", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"duplicate player", http.MethodPut, "/api/rooms/" + roomID + "/join", map[string]string{"user_id": "p1", "username": "again"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"config by guest", http.MethodPatch, "/api/rooms/" + roomID + "/config", map[string]any{"user_id": "p1", "config": map[string]any{"drawDuration": 5}}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"config too small", http.MethodPatch, "/api/rooms/" + roomID + "/config", map[string]any{"user_id": "h", "config": map[string]any{"maxPlayer": 2}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"negative duration", http.MethodPatch, "/api/rooms/" + roomID + "/config", map[string]any{"user_id": "h", "config": map[string]any{"guestDuration": -1}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not enough players", http.MethodPut, "/api/rooms/" + roomID + "/start", map[string]string{"user_id": "h"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"submit before start", http.MethodPut, "/api/rooms/" + roomID + "/submit", map[string]any{"user_id": "h", "payload": map[string]string{"type": "text", "data": "x"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown payload type", http.MethodPut, "/api/rooms/" + roomID + "/submit", map[string]any{"user_id": "h", "payload": map[string]string{"type": "video"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad cursor", http.MethodGet, "/api/rooms/" + roomID + "/h/request_result?groupIdx=a&round=0", nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"results before summary", http.MethodGet, "/api/rooms/" + roomID + "/h/request_result?groupIdx=0&round=0", nil, http.StatusNotFound, "ENTITY_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			status, body := srv.call(t, tt.method, tt.path, tt.body)
			req.Equal(tt.status, status, string(body))
			req.Equal(tt.code, decodeAs[map[string]any](t, body)["code"])
		})
	}
}

func TestRouter_FullGame(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{})
	players := []string{"h", "p1", "p2"}
	roomID := srv.createRoom(t, "h", "p1", "p2")

	// Given the host shortens the rounds and starts
	status, body := srv.call(t, http.MethodPatch, "/api/rooms/"+roomID+"/config",
		map[string]any{"user_id": "h", "config": map[string]any{"drawDuration": 30}})
	req.Equal(http.StatusOK, status, string(body))
	req.Equal(30.0, decodeAs[game.GameConfig](t, body).DrawDuration)

	status, body = srv.call(t, http.MethodPut, "/api/rooms/"+roomID+"/start", map[string]string{"user_id": "h"})
	req.Equal(http.StatusOK, status, string(body))

	status, body = srv.call(t, http.MethodGet, "/api/rooms/"+roomID+"/summary", nil)
	req.Equal(http.StatusOK, status)
	req.JSONEq(`{"data":[]}`, string(body))

	// When every player plays the three rounds
	for round := 0; round < 3; round++ {
		for _, id := range players {
			status, body := srv.call(t, http.MethodPut, "/api/rooms/"+roomID+"/submit",
				map[string]any{"user_id": id, "payload": map[string]string{"type": "text", "data": "a badger " + id}})
			req.Equal(http.StatusOK, status, string(body))
		}
	}

	// Then the summary holds the censored prompts
	status, body = srv.call(t, http.MethodGet, "/api/rooms/"+roomID+"/summary", nil)
	req.Equal(http.StatusOK, status)
	results := decodeAs[summaryResponse](t, body).Data
	req.Len(results, 9)
	req.Equal("h", results[0].GroupOwnerID)
	req.Equal("a ****** h", results[0].Submission.Payload)

	// And the host walks the results
	status, body = srv.call(t, http.MethodGet, "/api/rooms/"+roomID+"/h/request_result?groupIdx=0&round=0", nil)
	req.Equal(http.StatusOK, status, string(body))
	req.Equal(game.Cursor{GroupIdx: 0, Round: 1}, decodeAs[game.Cursor](t, body))

	// And a cursor far out of range is a structured not found
	status, body = srv.call(t, http.MethodGet, "/api/rooms/"+roomID+"/h/request_result?groupIdx=3074457345618258603&round=0", nil)
	req.Equal(http.StatusNotFound, status, string(body))
	req.Equal("ENTITY_NOT_FOUND", decodeAs[map[string]any](t, body)["code"])
}

func TestRouter_UnsubmitAndLeave(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{})
	roomID := srv.createRoom(t, "h", "p1")

	status, _ := srv.call(t, http.MethodPatch, "/api/rooms/"+roomID+"/p1/leave", nil)
	req.Equal(http.StatusOK, status)
	status, _ = srv.call(t, http.MethodPatch, "/api/rooms/"+roomID+"/h/unsubmit", nil)
	req.Equal(http.StatusOK, status)

	_, body := srv.call(t, http.MethodGet, "/api/rooms/"+roomID, nil)
	req.Len(decodeAs[game.RoomView](t, body).Players, 1)
}

func TestRouter_RateLimit(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{RequestsPerSecond: 0.001, RequestBurst: 2})

	for i := 0; i < 2; i++ {
		status, _ := srv.call(t, http.MethodGet, "/api/rooms", nil)
		req.Equal(http.StatusOK, status)
	}
	status, _ := srv.call(t, http.MethodGet, "/api/rooms", nil)
	req.Equal(http.StatusTooManyRequests, status)

	// Health is not limited
	status, _ = srv.call(t, http.MethodGet, "/healthz", nil)
	req.Equal(http.StatusOK, status)
}

func TestRouter_CORS(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{Session: SessionConfig{AllowedOrigins: []string{"https://game.example.com"}}})

	preflight := func(origin string) *http.Response {
		r, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/rooms", nil)
		req.NoError(err)
		r.Header.Set("Origin", origin)
		resp, err := srv.Client().Do(r)
		req.NoError(err)
		resp.Body.Close()
		return resp
	}

	resp := preflight("https://game.example.com")
	req.Equal(http.StatusNoContent, resp.StatusCode)
	req.Equal("https://game.example.com", resp.Header.Get("Access-Control-Allow-Origin"))

	resp = preflight("https://evil.example.com")
	req.Empty(resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_Metrics(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{})
	srv.createRoom(t, "h")

	status, body := srv.call(t, http.MethodGet, "/metrics", nil)
	req.Equal(http.StatusOK, status)
	req.Contains(string(body), "draw_guess_rooms_created_total 1")
}

func wsURL(srv *testServer, roomID, playerID string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room=" + roomID + "&user_id=" + playerID
}

func TestRouter_Websocket(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, Config{Session: SessionConfig{BufferSize: 8, WriteTimeout: time.Second}})
	roomID := srv.createRoom(t, "h")

	// Given the host is connected
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, roomID, "h"), nil)
	req.NoError(err)
	defer conn.Close()
	req.Eventually(func() bool { return len(srv.bus.Patterns()) == 2 }, time.Second, 5*time.Millisecond)

	// When it pings
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, data, err := conn.ReadMessage()
	req.NoError(err)
	req.Equal("pong", string(data))

	// When another player joins
	status, _ := srv.call(t, http.MethodPut, "/api/rooms/"+roomID+"/join", map[string]string{"user_id": "p1", "username": "Bob"})
	req.Equal(http.StatusOK, status)

	// Then the host is told
	_, data, err = conn.ReadMessage()
	req.NoError(err)
	evt := decodeAs[map[string]any](t, data)
	req.Equal(string(event.PlayerJoined), evt["type"])
	req.Equal(event.RoomChannel(roomID), evt["channel"])

	// When the connection closes the subscriptions are released
	req.NoError(conn.Close())
	req.Eventually(func() bool { return len(srv.bus.Patterns()) == 0 }, time.Second, 5*time.Millisecond)
}

func TestRouter_Websocket_Refused(t *testing.T) {
	srv := newTestServer(t, Config{})
	roomID := srv.createRoom(t, "h")

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"missing player", wsURL(srv, roomID, ""), http.StatusBadRequest},
		{"unknown room", wsURL(srv, "nope", "h"), http.StatusNotFound},
		{"stranger", wsURL(srv, roomID, "stranger"), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(tt.url, nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			require.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
