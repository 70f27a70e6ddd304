// Package web is the HTTP surface: server-rendered pages for auth and
// analysis, a JSON chat endpoint, and the health probe. Handlers hold no
// state of their own; everything lives in the stores and the remote API.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"neuroview/backend"
	"neuroview/chatguard"
	"neuroview/library"
	"neuroview/notify"
	"neuroview/results"
	"neuroview/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "neuroview_session"

type Deps struct {
	Log            *slog.Logger
	Backend        backend.Client
	Sessions       *session.Store
	Cookies        *session.CookieCodec
	Results        *results.Repository
	Guard          *chatguard.Guard
	Library        library.Searcher
	Hub            *notify.Hub
	MaxUploadBytes int64
	// SecureCookies marks the session cookie Secure; disable only for
	// plain-HTTP local development.
	SecureCookies bool
}

type Server struct {
	log            *slog.Logger
	backend        backend.Client
	sessions       *session.Store
	cookies        *session.CookieCodec
	results        *results.Repository
	guard          *chatguard.Guard
	library        library.Searcher
	hub            *notify.Hub
	maxUploadBytes int64
	secureCookies  bool

	router *chi.Mux
	tmpl   *template.Template
	server *http.Server

	// One prediction in flight per session; a second upload gets 409.
	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

func NewServer(d Deps) *Server {
	s := &Server{
		log:            d.Log,
		backend:        d.Backend,
		sessions:       d.Sessions,
		cookies:        d.Cookies,
		results:        d.Results,
		guard:          d.Guard,
		library:        d.Library,
		hub:            d.Hub,
		maxUploadBytes: d.MaxUploadBytes,
		secureCookies:  d.SecureCookies,
		router:         chi.NewRouter(),
		tmpl:           template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		inFlight:       make(map[uuid.UUID]struct{}),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Get("/login", s.showLogin)
	s.router.Post("/login", s.handleLogin)
	s.router.Get("/register", s.showRegister)
	s.router.Post("/register", s.handleRegister)
	s.router.Get("/forgot-password", s.showForgotPassword)
	s.router.Post("/forgot-password", s.handleForgotPassword)
	s.router.Get("/reset-password", s.showResetPassword)
	s.router.Post("/reset-password", s.handleResetPassword)

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/prediction", http.StatusSeeOther)
		})
		r.Get("/prediction", s.showPrediction)
		r.Post("/upload", s.handleUpload)
		r.Post("/api/chat", s.handleChat)
		r.Get("/library/search", s.showLibrary)
		r.Post("/logout", s.handleLogout)
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "addr", addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(rw, r)
		s.log.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start),
			"remote_addr", r.RemoteAddr,
		)
	})
}

type ctxKey int

const sessionKey ctxKey = 0

// requireSession authenticates the request from the signed cookie. Pages
// redirect to the login form; JSON endpoints get a 401 body instead.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, err := s.sessionFromRequest(r)
		if err != nil {
			if isJSONRoute(r) {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			s.clearCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, record)))
	})
}

func (s *Server) sessionFromRequest(r *http.Request) (session.Record, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return session.Record{}, err
	}
	id, err := s.cookies.Decode(cookie.Value)
	if err != nil {
		return session.Record{}, err
	}
	return s.sessions.Get(id)
}

func currentSession(r *http.Request) session.Record {
	record, _ := r.Context().Value(sessionKey).(session.Record)
	return record
}

func (s *Server) setCookie(w http.ResponseWriter, id uuid.UUID) error {
	value, err := s.cookies.Encode(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Server) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func isJSONRoute(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Template rendering failed", "template", name, "err", err)
	}
}
