package render

import (
	"net"
	"net/http"
	"sync"

	appLog "zosiaprint/internal/log"
)

// server is the local preview HTTP server the headless browser loads
// documents from. It serves rendered documents from memory and falls back
// to the templates directory for their assets (stylesheets, images), which
// the templates reference with relative URLs.
//
// It binds 127.0.0.1 on an ephemeral port and lives only for the duration
// of one generation run.
type server struct {
	mux       *http.ServeMux
	staticDir string

	mu   sync.RWMutex
	docs map[string][]byte

	ln  net.Listener
	srv *http.Server
}

func newServer(staticDir string) *server {
	s := &server{
		mux:       http.NewServeMux(),
		staticDir: staticDir,
		docs:      make(map[string][]byte),
	}
	s.registerRoutes()
	return s
}

func (s *server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/", s.handleDocument)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleDocument serves a rendered document when the path is known,
// otherwise falls back to static template assets.
func (s *server) handleDocument(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	body, ok := s.docs[r.URL.Path]
	s.mu.RUnlock()

	if ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	http.FileServer(http.Dir(s.staticDir)).ServeHTTP(w, r)
}

// setDocument publishes rendered HTML under the given URL path.
func (s *server) setDocument(path string, body []byte) {
	s.mu.Lock()
	s.docs[path] = body
	s.mu.Unlock()
}

// start binds an ephemeral loopback port and begins serving.
func (s *server) start() error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	s.ln = ln
	s.srv = &http.Server{Handler: s.mux}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			appLog.Error("preview server stopped", err)
		}
	}()
	return nil
}

// baseURL returns the server's root URL, e.g. "http://127.0.0.1:49152".
func (s *server) baseURL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *server) close() {
	if s.srv != nil {
		_ = s.srv.Close()
	}
}
