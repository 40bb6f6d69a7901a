// Package server previews a generated site locally and reloads open pages
// when the site is rebuilt.
package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Bitlatte/developmental/internal/route"
)

// LiveReloadPath is where pages connect to be told about rebuilds.
const LiveReloadPath = "/__livereload"

// Message is sent to live reload clients.
type Message struct {
	Type string `json:"type"`
}

// Server serves a build output directory.
type Server struct {
	root     string
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

func New(root string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		root:    root,
		logger:  logger,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Local preview only.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler serves the output directory with caching disabled. Paths with no
// generated file get the site's 404 page.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(LiveReloadPath, s.handleLiveReload)

	files := http.FileServer(http.Dir(s.root))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if !s.exists(r.URL.Path) {
			s.notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
	return mux
}

// exists reports whether urlPath maps to a file, or to a directory holding an
// index.html. Directory listings are never served.
func (s *Server) exists(urlPath string) bool {
	clean := path.Clean("/" + urlPath)
	full := filepath.Join(s.root, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	_, err = os.Stat(filepath.Join(full, route.IndexFile))
	return err == nil
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(filepath.Join(s.root, route.NotFoundFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read 404 page", zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}

func (s *Server) handleLiveReload(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	// Clients never send anything meaningful; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("live reload client error", zap.Error(err))
			}
			return
		}
	}
}

// Clients returns the number of connected live reload clients.
func (s *Server) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Broadcast tells every connected page to reload.
func (s *Server) Broadcast() {
	s.notify(Message{Type: "RELOAD"})
}

func (s *Server) notify(msg Message) {
	// One writer per connection at a time.
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(msg); err != nil {
			s.logger.Debug("failed to notify live reload client", zap.Error(err))
		}
	}
	s.logger.Debug("notified live reload clients", zap.String("type", strings.ToLower(msg.Type)), zap.Int("clients", len(s.clients)))
}
