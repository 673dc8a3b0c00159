package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/boy-who-codes/nodeflix/internal/email"
	"github.com/boy-who-codes/nodeflix/internal/handler"
	"github.com/boy-who-codes/nodeflix/internal/middleware"
	"github.com/boy-who-codes/nodeflix/internal/store"
)

type Server struct {
	db           *sql.DB
	authH        *handler.AuthHandler
	listingH     *handler.ListingHandler
	renderer     *handler.Renderer
	sessionStore *store.SessionStore
	rateLimiter  *middleware.RateLimiter
	staticDir    string
	logger       *slog.Logger
	accessLogger *slog.Logger
}

type Config struct {
	BaseURL      string
	TemplatesDir string
	StaticDir    string
	EmailClient  *email.Client
	AccessLogger *slog.Logger
}

func New(db *sql.DB, cfg Config, logger *slog.Logger) (*Server, error) {
	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	flashStore := store.NewFlashStore(db)
	listingStore := store.NewListingStore(db)

	tmplDir := cfg.TemplatesDir
	if tmplDir == "" {
		tmplDir = "web/templates"
	}
	templates, err := handler.LoadTemplates(tmplDir)
	if err != nil {
		return nil, err
	}
	renderer := handler.NewRenderer(templates, logger.With("component", "render"))

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = "web/static"
	}

	return &Server{
		db:           db,
		authH:        handler.NewAuthHandler(userStore, sessionStore, flashStore, cfg.EmailClient, renderer, logger.With("component", "auth")),
		listingH:     handler.NewListingHandler(listingStore, renderer, logger.With("component", "listing")),
		renderer:     renderer,
		sessionStore: sessionStore,
		rateLimiter:  middleware.NewRateLimiter(),
		staticDir:    staticDir,
		logger:       logger,
		accessLogger: cfg.AccessLogger,
	}, nil
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	// Page routes share a session; static files and health checks do not
	// need one.
	pages := http.NewServeMux()
	pages.HandleFunc("GET /{$}", s.listingH.Home)
	pages.HandleFunc("GET /auth", s.authH.AuthPage)
	pages.HandleFunc("POST /auth/signup", s.rateLimitedHandler(s.authH.Signup))
	pages.HandleFunc("POST /auth/login", s.rateLimitedHandler(s.authH.Login))
	pages.HandleFunc("POST /auth/logout", s.authH.Logout)
	pages.Handle("GET /listings", middleware.RequireAuth(http.HandlerFunc(s.listingH.Listings)))
	pages.Handle("GET /listings/{id}", middleware.RequireAuth(http.HandlerFunc(s.listingH.ListingDetail)))
	pages.HandleFunc("/", s.notFoundHandler)

	outerMux := http.NewServeMux()
	outerMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
	outerMux.HandleFunc("GET /health", s.healthHandler)
	outerMux.Handle("/", middleware.EnsureSession(s.sessionStore, s.logger.With("component", "session"))(pages))

	h := middleware.Recover(s.logger.With("component", "recover"), s.renderer.ErrorBody)(outerMux)
	return middleware.RequestLogger(s.logger.With("component", "http"), s.accessLogger)(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// notFoundHandler renders the generic not-found page for unmatched routes.
func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	s.renderer.NotFound(w)
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}
