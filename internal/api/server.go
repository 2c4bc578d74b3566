package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hechen2/fapiaosum/internal/config"
	"github.com/hechen2/fapiaosum/internal/ledger"
	"github.com/hechen2/fapiaosum/internal/report"
)

// Server is the HTTP API for parsing invoice batches and reading their
// roll-ups. It returns data only; rendering is the caller's concern.
type Server struct {
	router   chi.Router
	sessions *ledger.Store
	expense  report.ExpenseMapping
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *ledger.Store, expense report.ExpenseMapping, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		sessions: sessions,
		expense:  expense,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints (auth is a no-op without a configured key).
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey))

		r.Post("/api/invoices", s.handleParse)

		r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleSummary)
			r.Get("/crosstab", s.handleCrossTab)
			r.Get("/expenses", s.handleExpenses)
			r.Get("/records", s.handleRecords)
			r.Get("/export", s.handleExport)
			r.Delete("/", s.handleDelete)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// session resolves the session of a request, writing a 404 when it is gone.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *ledger.Session {
	id := chi.URLParam(r, "sessionID")
	sess := s.sessions.Get(id)
	if sess == nil {
		jsonError(w, "session not found or expired", http.StatusNotFound)
	}
	return sess
}
