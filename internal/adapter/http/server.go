package http

import (
	"net/http"

	"github.com/bnema/pagerec/internal/adapter/http/middleware"
	"github.com/bnema/pagerec/internal/port"
	"github.com/bnema/pagerec/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
	apiKeyHash string
	handler    http.Handler
}

func NewServer(recorder RecorderService, store port.RecordingStore, encoder port.Encoder, eventBus *service.EventBus, apiKeyHash string) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(recorder, store, encoder),
		sseHandler: NewSSEHandler(eventBus, store),
		apiKeyHash: apiKeyHash,
	}

	s.registerRoutes()
	s.handler = middleware.RequestID(middleware.SecurityHeaders(s.mux))

	return s
}

func (s *Server) api(h http.HandlerFunc) http.Handler {
	return APIKeyMiddleware(s.apiKeyHash, h)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("POST /api/start", s.api(s.handlers.Start()))
	s.mux.Handle("GET /api/status/{id}", s.api(s.handlers.Status()))
	s.mux.Handle("POST /api/stop", s.api(s.handlers.Stop()))
	s.mux.Handle("DELETE /api/delete/{id}", s.api(s.handlers.Delete()))
	s.mux.Handle("GET /api/recordings", s.api(s.handlers.List()))
	s.mux.Handle("GET /api/events/{id}", s.api(s.sseHandler.Events()))

	s.mux.Handle("GET /{$}", s.api(s.handlers.Dashboard()))
	s.mux.HandleFunc("GET /healthz", s.handlers.Health())

	s.mux.HandleFunc("/", NotFound())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
