package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/libreria/apiserver/config"
	"github.com/libreria/apiserver/internal/auth"
	"github.com/libreria/apiserver/internal/handlers"
	"github.com/libreria/apiserver/internal/logger"
	"github.com/libreria/apiserver/internal/middleware"
	"github.com/libreria/apiserver/internal/services"
	"github.com/libreria/apiserver/internal/store"
	"github.com/libreria/apiserver/internal/upstream"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	logger     *zap.Logger
}

// New constructs a Server with its stores, upstream clients, and routes
// wired. Data lives in process memory only and resets on restart.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret must not be empty")
	}
	if cfg.JWTSecret == config.DefaultJWTSecret && cfg.Env != "dev" {
		log.Warn("using the default JWT secret; set JWT_SECRET in production")
	}

	userStore := store.NewUserStore()
	bookStore := store.NewBookStore()
	if cfg.SeedDemoData {
		if err := store.SeedDemoUsers(ctx, userStore); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		if err := store.SeedDemoBooks(ctx, bookStore); err != nil {
			return nil, fmt.Errorf("seed books: %w", err)
		}
	}

	userService := services.NewUserService(userStore)
	bookService := services.NewBookService(bookStore)

	issuer := auth.NewIssuer(cfg.JWTSecret, auth.DefaultTokenTTL)
	pokeClient := upstream.NewPokeClient(cfg.PokeAPIBaseURL, cfg.UpstreamTimeout, log)
	weatherClient := upstream.NewWeatherClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.UpstreamTimeout, log)

	router := NewRouter(cfg, log, userService, bookService, issuer, pokeClient, weatherClient)

	port := cfg.ServerPort
	if port == 0 {
		port = 3000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		logger:     log,
	}, nil
}

// NewRouter builds the full route tree. Split out from New so tests can
// serve the API in-process.
func NewRouter(
	cfg config.Config,
	log *zap.Logger,
	userService *services.UserService,
	bookService *services.BookService,
	issuer *auth.Issuer,
	catalog handlers.CreatureCatalog,
	weather handlers.WeatherProvider,
) *chi.Mux {
	requireAuth := handlers.RequireAuth(issuer)

	router := chi.NewRouter()
	router.Use(
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(log),
		middleware.CORS(cfg.CORSAllowedOrigins),
		chimiddleware.Timeout(60*time.Second),
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Route("/users", func(r chi.Router) {
			handlers.AuthRouter(r, userService, issuer, log)
		})
		r.Route("/library/books", func(r chi.Router) {
			r.Use(requireAuth)
			handlers.BookRouter(r, bookService, log)
		})
		r.Route("/external", func(r chi.Router) {
			r.Use(requireAuth)
			handlers.ExternalRouter(r, catalog, weather, log)
		})
	})

	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	_ = s.logger.Sync()
	return err
}
