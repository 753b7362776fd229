package worker

import (
	"net/http"
	"time"

	apihandlers "tracker/src/api/handlers"
	"tracker/src/config"
	"tracker/src/worker/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	handler, err := handlers.NewHandler(cfg, logger)
	if err != nil {
		return nil, err
	}
	return NewServerWithHandler(handler), nil
}

// NewServerWithHandler wires routes around an existing handler. Tests use it to
// inject fakes.
func NewServerWithHandler(handler *handlers.Handler) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Get("/alive", apihandlers.Healthcheck)
	s.Router.Route("/api/refresh", func(r chi.Router) {
		r.Post("/all", s.Handler.PostRefreshAll)
		r.Post("/{id}", s.Handler.PostRefreshUser)
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		Handler:      server,
	}
	return httpServer
}
