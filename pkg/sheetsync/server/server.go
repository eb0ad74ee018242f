// Package server exposes range synchronization over HTTP.
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync"
)

// Server routes synchronization requests to a Syncer.
type Server struct {
	syncer *sheetsync.Syncer
	router *mux.Router
	log    *zap.SugaredLogger
}

// New creates a Server around the given Syncer. A nil logger disables
// logging.
func New(syncer *sheetsync.Syncer, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{syncer: syncer, log: log}

	r := mux.NewRouter()
	r.Use(s.requestLogger)
	r.HandleFunc("/sync", s.HandleSync).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.HandleHealth).Methods(http.MethodGet)
	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger tags every request with an ID and logs it on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r)
		s.log.Debugw("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
	})
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
