package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/LegalDragon/slidecast/api/models"
	"github.com/LegalDragon/slidecast/player"
	"github.com/LegalDragon/slidecast/store"
)

const (
	socketWriteTimeout = 10 * time.Second
	// Events are buffered per connection; a client that cannot keep up
	// loses intermediate progress samples rather than stalling playback.
	socketEventBuffer = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewer pages are opened from QR codes on arbitrary devices.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// playSocketMessage is one outbound frame: either a playback event or a
// full state snapshot following a command.
type playSocketMessage struct {
	Event *player.Event `json:"event,omitempty"`
	State *player.State `json:"state,omitempty"`
}

// handlePlaySocket runs one playback session over a websocket. Each
// connection gets its own controller driving the timeline server-side;
// the client renders whatever events it receives.
func (ws *WebServer) handlePlaySocket(c *gin.Context) {
	code := c.Param("code")
	cfg, err := ws.db.LoadConfiguration(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Slideshow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load slideshow"})
		return
	}

	pool, err := ws.db.LoadSharedVideoPool()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load shared pool"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "code", code, "error", err)
		return
	}

	session := &playSession{
		conn:   conn,
		events: make(chan playSocketMessage, socketEventBuffer),
		done:   make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	assets := ws.assetResolver()
	preloader := player.NewPreloader(nil, assets, pool)

	ctrl := player.NewController(cfg, player.Options{
		Assets:     assets,
		SharedPool: pool,
		Preload: func(nextIndex int) {
			go preloader.Warm(ctx, cfg, nextIndex)
		},
	})
	defer ctrl.Stop()

	ctrl.Subscribe(func(ev player.Event) {
		session.send(playSocketMessage{Event: &ev})
	})

	go session.writeLoop()
	defer session.close()

	ctrl.Start()
	session.snapshot(ctrl)

	session.readLoop(ctrl, cfg)
}

type playSession struct {
	conn   *websocket.Conn
	events chan playSocketMessage
	done   chan struct{}
}

// send queues a frame for the writer, dropping when the buffer is full.
func (s *playSession) send(msg playSocketMessage) {
	select {
	case s.events <- msg:
	case <-s.done:
	default:
		slog.Debug("dropping playback frame, slow websocket client")
	}
}

func (s *playSession) snapshot(ctrl *player.Controller) {
	state := ctrl.Snapshot()
	s.send(playSocketMessage{State: &state})
}

func (s *playSession) writeLoop() {
	for {
		select {
		case msg := <-s.events:
			s.conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
			if err := s.conn.WriteJSON(msg); err != nil {
				slog.Debug("websocket write failed", "error", err)
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *playSession) readLoop(ctrl *player.Controller, cfg *player.Config) {
	for {
		var cmd models.PlayerCommand
		if err := s.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket read failed", "error", err)
			}
			return
		}

		switch cmd.Action {
		case "play":
			ctrl.Play()
		case "pause":
			ctrl.Pause()
		case "skip":
			if !cfg.AllowSkip {
				continue
			}
			ctrl.Skip()
		case "replay":
			ctrl.Replay()
		default:
			slog.Debug("unknown playback command", "action", cmd.Action)
			continue
		}
		s.snapshot(ctrl)
	}
}

func (s *playSession) close() {
	close(s.done)
	s.conn.Close()
}
