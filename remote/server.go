// Package remote exposes a panel.Manager over HTTP: frame snapshots, screen
// switching and input injection for remote debugging and automation.
package remote

import (
	"bytes"
	"context"
	"errors"
	"image"
	"net"
	"net/http"
	"slices"
	"time"

	"git.sr.ht/~sbinet/gg"
	"github.com/gin-gonic/gin"

	"github.com/phanxgames/panel"
)

// Panel is the narrow manager contract required by the HTTP API.
type Panel interface {
	HandleInput(ev panel.Event)
	Post(fn func(*panel.Manager))
	LastFrame() *image.RGBA
	ScreenNames() []string
	CurrentScreenName() string
	FrameCount() uint64
	DroppedFrames() uint64
	ActualFPS() float64
}

// Server provides the remote-control API.
type Server struct {
	addr      string
	panel     Panel
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a server for p listening on addr (default
// 127.0.0.1:8080).
func NewServer(addr string, p Panel) *Server {
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		panel:     p,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/frame.png", s.handleFrame)
	r.GET("/api/screens", s.handleScreens)
	r.POST("/api/screens/:name", s.handleSwitch)
	r.POST("/api/input", s.handleInput)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.startTime = time.Now()
	panel.Logger().Info("panel: remote API listening", "addr", listener.Addr().String())

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			panel.Logger().Error("panel: remote API stopped", "err", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).String(),
		"screen":  s.panel.CurrentScreenName(),
		"frames":  s.panel.FrameCount(),
		"dropped": s.panel.DroppedFrames(),
		"fps":     s.panel.ActualFPS(),
	})
}

func (s *Server) handleFrame(c *gin.Context) {
	frame := s.panel.LastFrame()
	if frame == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no frame rendered yet"})
		return
	}
	var buf bytes.Buffer
	if err := gg.NewContextForRGBA(frame).EncodePNG(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode frame"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) handleScreens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screens": s.panel.ScreenNames(),
		"current": s.panel.CurrentScreenName(),
	})
}

func (s *Server) handleSwitch(c *gin.Context) {
	name := c.Param("name")
	if !slices.Contains(s.panel.ScreenNames(), name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown screen", "screen": name})
		return
	}
	s.panel.Post(func(m *panel.Manager) {
		if err := m.SwitchScreen(name); err != nil {
			panel.Logger().Warn("panel: remote switch failed", "screen", name, "err", err)
		}
	})
	c.JSON(http.StatusAccepted, gin.H{"screen": name})
}

var (
	errMissingKey = errors.New("key events need a key")
	errNotInput   = errors.New("event kind is not an input")
)

type inputRequest struct {
	Kind  string `json:"kind" binding:"required"`
	X     *int   `json:"x"`
	Y     *int   `json:"y"`
	Key   string `json:"key"`
	Steps int    `json:"steps"`
}

func (s *Server) handleInput(c *gin.Context) {
	var req inputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing kind field"})
		return
	}
	events, err := req.events()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, ev := range events {
		s.panel.HandleInput(ev)
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": len(events)})
}

// events translates the request into panel events.
func (r inputRequest) events() ([]panel.Event, error) {
	kind, err := panel.ParseEventKind(r.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case panel.EventClick, panel.EventLongPress:
		ev := panel.Press(kind)
		if r.X != nil && r.Y != nil {
			ev.X, ev.Y, ev.Positioned = *r.X, *r.Y, true
		}
		return []panel.Event{ev}, nil
	case panel.EventRotateCW, panel.EventRotateCCW:
		n := min(max(r.Steps, 1), 100)
		out := make([]panel.Event, n)
		for i := range out {
			out[i] = panel.Rotate(kind == panel.EventRotateCW)
		}
		return out, nil
	case panel.EventKeyPress, panel.EventKeyRelease:
		if r.Key == "" {
			return nil, errMissingKey
		}
		return []panel.Event{panel.KeyEvent{Type: kind, Key: r.Key}}, nil
	}
	return nil, errNotInput
}
