package api

import (
	"net/http"
	"time"

	"tracker/src/api/handlers"
	"tracker/src/api/middlewares"
	"tracker/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	handler, err := handlers.NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithHandler(handler, logger), nil
}

// NewServerWithHandler wires routes around an existing handler. Tests use it to
// inject fakes.
func NewServerWithHandler(handler *handlers.Handler, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handler,
	}
	server.InitRoutes(logger)
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(logger *logrus.Logger) {
	if logger != nil {
		s.Router.Use(middlewares.RequestLogger(logger))
	}

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Post("/signup", s.Handler.PostSignup)
	s.Router.Post("/login", s.Handler.PostLogin)

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/coins", s.Handler.GetCoins)
		r.Get("/coins/{id}/market_chart", s.Handler.GetMarketChart)
		r.Get("/search", s.Handler.SearchCoins)
		r.Get("/news", s.Handler.GetNews)

		r.Route("/portfolio", func(r chi.Router) {
			r.Use(jwtauth.Verifier(s.Handler.Controller.TokenAuth))
			r.Use(middlewares.Authenticator)

			r.Get("/", s.Handler.GetPortfolio)
			r.Post("/", s.Handler.PostPortfolio)
			r.Get("/summary", s.Handler.GetPortfolioSummary)
			r.Post("/refresh", s.Handler.PostPortfolioRefresh)
			r.Put("/{id}", s.Handler.PutPortfolio)
			r.Delete("/{id}", s.Handler.DeletePortfolio)
		})
	})
}

func NewHTTPServer(server *Server, cfg *config.Config) *http.Server {
	// The browser client runs on a different origin.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      corsHandler.Handler(server),
	}
	return httpServer
}
