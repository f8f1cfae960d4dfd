// Package server exposes height-grid generation over a WebSocket. Each
// client sends settings as JSON and receives the generated grid back.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zyedidia/generic/mapset"

	"heightmap/pkg/engine/fuzzy"
	"heightmap/pkg/engine/random"
	"heightmap/pkg/game/generator"
	"heightmap/pkg/game/i18n"
	"heightmap/pkg/game/palette"
	"heightmap/pkg/game/settings"
)

// Message types sent to clients
const (
	TypeGrid  = "grid"
	TypeError = "error"
)

const shutdownTimeout = 5 * time.Second

// Request updates a client's settings. Omitted fields keep their value.
// A seed restarts the client's random source so equal requests give equal grids.
type Request struct {
	Size      *int     `json:"size,omitempty"`
	Roughness *float64 `json:"roughness,omitempty"`
	Palette   *string  `json:"palette,omitempty"`
	Generator *string  `json:"generator,omitempty"`
	Seed      *int64   `json:"seed,omitempty"`
}

// GridMessage carries a generated grid, row-major
type GridMessage struct {
	Type      string      `json:"type"`
	Side      int         `json:"side"`
	Size      int         `json:"size"`
	Roughness float64     `json:"roughness"`
	Palette   string      `json:"palette"`
	Generator string      `json:"generator"`
	Values    [][]float64 `json:"values"`
}

// ErrorMessage reports a rejected request. The client's settings are unchanged.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Options configure a Server
type Options struct {
	Listen   string
	MaxSize  int
	Defaults settings.Settings
}

// client is one WebSocket connection and its private generation state
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex // serialises writes

	current settings.Settings
	src     random.Source
}

// Server serves /ws and /healthz
type Server struct {
	opts     Options
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   mapset.Set[*client]
}

// New creates a server. MaxSize is capped at generator.MaxSize.
func New(opts Options) *Server {
	if opts.MaxSize <= 0 || opts.MaxSize > generator.MaxSize {
		opts.MaxSize = generator.MaxSize
	}
	return &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		clients: mapset.New[*client](),
	}
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return mux
}

// Clients returns the number of connected clients
func (s *Server) Clients() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return s.clients.Size()
}

// Serve listens on Options.Listen until ctx is cancelled, then shuts down
// and closes every open connection.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Listen)
	if err != nil {
		return fmt.Errorf("cannot listen on %s: %w", s.opts.Listen, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	log.Print(i18n.Tf("MSG_LISTENING", ln.Addr()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Hijacked WebSocket connections are not tracked by http.Server.
	s.closeClients()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) closeClients() {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	s.clients.Each(func(c *client) {
		c.mu.Lock()
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		c.mu.Unlock()
		c.conn.Close()
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	c := &client{
		conn:    conn,
		current: s.opts.Defaults,
		src:     random.New(),
	}

	s.clientsMu.Lock()
	s.clients.Put(c)
	s.clientsMu.Unlock()
	defer func() {
		s.clientsMu.Lock()
		s.clients.Remove(c)
		s.clientsMu.Unlock()
		log.Printf("Client %s disconnected", r.RemoteAddr)
	}()

	log.Printf("Client connected from %s", r.RemoteAddr)

	// Send the default grid first
	var first any
	if grid, err := generate(c.current, c.src); err != nil {
		first = ErrorMessage{Type: TypeError, Error: err.Error()}
	} else {
		first = grid
	}
	if err := s.reply(c, first); err != nil {
		log.Println("WebSocket write error:", err)
		return
	}

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("WebSocket read error:", err)
			}
			return
		}

		var msg any
		next, src, err := s.apply(c, req)
		if err == nil {
			var grid GridMessage
			if grid, err = generate(next, src); err == nil {
				c.current, c.src = next, src
				msg = grid
			}
		}
		if err != nil {
			msg = ErrorMessage{Type: TypeError, Error: err.Error()}
		}
		if err := s.reply(c, msg); err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}
}

// apply merges req into a copy of the client's settings and picks the
// random source to generate with. The client itself is not modified.
func (s *Server) apply(c *client, req Request) (settings.Settings, random.Source, error) {
	next, src := c.current, c.src

	if req.Size != nil {
		if *req.Size < 1 || *req.Size > s.opts.MaxSize {
			return next, src, fmt.Errorf("%w: %d (want 1..%d)", generator.ErrInvalidSize, *req.Size, s.opts.MaxSize)
		}
		next.Size = *req.Size
	}
	if req.Roughness != nil {
		next.Roughness = *req.Roughness
	}
	if req.Palette != nil {
		p, err := palette.Lookup(*req.Palette)
		if err != nil {
			return next, src, err
		}
		next.Palette = p
	}
	if req.Generator != nil {
		if _, err := generator.Lookup(*req.Generator); err != nil {
			return next, src, err
		}
		next.Generator = fuzzy.Normalize(*req.Generator)
	}
	if err := generator.Validate(next.Size, next.Roughness); err != nil {
		return next, src, err
	}

	if req.Seed != nil {
		src = random.ForSeed(*req.Seed)
	}
	return next, src, nil
}

// generate builds a grid from cur using src
func generate(cur settings.Settings, src random.Source) (GridMessage, error) {
	gen, err := generator.New(cur.Generator, src)
	if err != nil {
		return GridMessage{}, err
	}
	grid, err := gen.Generate(cur.Size, cur.Roughness)
	if err != nil {
		return GridMessage{}, err
	}

	return GridMessage{
		Type:      TypeGrid,
		Side:      grid.Side(),
		Size:      cur.Size,
		Roughness: cur.Roughness,
		Palette:   cur.Palette.Name,
		Generator: cur.Generator,
		Values:    grid.Rows(),
	}, nil
}

func (s *Server) reply(c *client, msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}
