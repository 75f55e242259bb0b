package e2e

import (
	"bytes"
	"context"
	"draw-guess/internal"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseHttpSuite struct {
	suite.Suite
	Config  Config
	BaseURL string
	client  *http.Client
	stop    func()
}

// SetupSuite loads the environment configuration and starts a local server when none is given
func (s *BaseHttpSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 5 * time.Second}

	if s.Config.ServerAddr != "" {
		s.BaseURL = strings.TrimSuffix(s.Config.ServerAddr, "/")
		s.stop = func() {}
		return
	}
	s.startLocalServer()
}

func (s *BaseHttpSuite) TearDownSuite() {
	s.stop()
}

func (s *BaseHttpSuite) startLocalServer() {
	config := internal.Config{
		LogLevel:              "ERROR",
		TickInterval:          20 * time.Millisecond,
		SweepInterval:         time.Second,
		RoomRetention:         time.Hour,
		RestartInterval:       100 * time.Millisecond,
		ConnectionBufferSize:  64,
		WriteTimeout:          time.Second,
		FramesPerSecond:       10,
		FrameBurst:            10,
		BlankImageURL:         "https://cdn.example.com/blank.png",
		CharReplacement:       "*",
		MaxImageBytes:         1 << 20,
		DefaultMaxPlayers:     8,
		DefaultReviewDuration: 10,
		DefaultDrawDuration:   60,
		DefaultGuestDuration:  30,
	}
	app, err := internal.NewApp(slog.New(slog.DiscardHandler), config)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(app.Handler)
	go app.Run(ctx)

	s.BaseURL = srv.URL
	s.stop = func() {
		app.Stop()
		cancel()
		srv.Close()
	}
}

// Step prints a colorized header before running fn as a subtest
func (s *BaseHttpSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

// Call sends body as JSON and decodes the answer into out when it is not nil.
func (s *BaseHttpSuite) Call(method, path string, body, out any) int {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.BaseURL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	line := fmt.Sprintf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		line += "\n" + string(data)
	}
	s.T().Log(line)

	if out != nil && resp.StatusCode < http.StatusBadRequest {
		s.Require().NoError(json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

// Listen opens the websocket of a player.
func (s *BaseHttpSuite) Listen(roomID, playerID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.BaseURL, "http") + "/ws?room=" + roomID + "&user_id=" + playerID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

// Ready blocks until the session of conn answers a ping, its subscriptions are then active.
func (s *BaseHttpSuite) Ready(conn *websocket.Conn) {
	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		s.Require().NoError(err, "no pong received")
		if string(data) == "pong" {
			return
		}
	}
}

// Event is a message as received on a player websocket.
type Event struct {
	Channel string          `json:"channel"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data"`
}

// WaitFor reads conn until an event of the given type arrives.
func (s *BaseHttpSuite) WaitFor(conn *websocket.Conn, eventType string) Event {
	return s.WaitUntil(conn, func(evt Event) bool { return evt.Type == eventType })
}

// WaitUntil reads conn until match accepts an event.
func (s *BaseHttpSuite) WaitUntil(conn *websocket.Conn, match func(Event) bool) Event {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(10 * time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		s.Require().NoError(err, "no matching event received")
		var evt Event
		if json.Unmarshal(data, &evt) != nil {
			continue
		}
		if match(evt) {
			return evt
		}
	}
}
