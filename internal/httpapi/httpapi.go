package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/application/service"
	"github.com/TemirB/rsrvd-site/internal/chat"
	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/i18n"
	"github.com/TemirB/rsrvd-site/internal/observability"
	"github.com/TemirB/rsrvd-site/internal/preload"
	"github.com/TemirB/rsrvd-site/internal/session"
)

//go:generate mockgen -source=httpapi.go -destination=httpapi_mock_test.go -package=httpapi

type Catalog interface {
	Services() []domain.Service
	Packages() []domain.Package
	Products(ctx context.Context, category string) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Service(ctx context.Context, id string) (domain.Service, error)
	Portfolio(category string, featured bool) []domain.Project
}

type Checkout interface {
	CheckoutWithStats(ctx context.Context, sessionID string, cart service.Cart, notifier domain.Notifier) (*domain.Order, service.CheckoutStats, error)
}

type Chat interface {
	Open(lang i18n.Language) chat.Conversation
	Send(id, text string) (domain.Message, error)
	SetEmail(id, email string) error
	Get(id string) (chat.Conversation, error)
	Close(id string) error
}

type Preferences interface {
	Language(ctx context.Context, sid, acceptLanguage string) i18n.Language
	SetLanguage(ctx context.Context, sid, value string) (i18n.Language, error)
	Theme(ctx context.Context, sid string) domain.Theme
	SetTheme(ctx context.Context, sid, value string) (domain.Theme, error)
}

type Contact interface {
	Submit(ctx context.Context, msg domain.ContactMessage, notifier domain.Notifier) error
}

type Gate interface {
	State() preload.State
	IsCacheValid(ctx context.Context) bool
}

// Deps are the services behind the API. All fields are required.
type Deps struct {
	Sessions   *session.Registry
	Catalog    Catalog
	Checkout   Checkout
	Chat       Chat
	Prefs      Preferences
	Contact    Contact
	Gate       Gate
	Translator *i18n.Translator
	WebDir     string
}

type Server struct {
	deps    Deps
	router  chi.Router
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(deps Deps, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		deps:    deps,
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		ServerTimingApp(s.metrics),
		accessLog(s.logger),
	)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/preload", s.getPreload)
		r.Get("/i18n/{lang}/{section}", s.getTranslations)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/services", s.listServices)
			r.Get("/packages", s.listPackages)
			r.Get("/products", s.listProducts)
			r.Get("/products/{id}", s.getProduct)
			r.Get("/portfolio", s.listPortfolio)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.withSession)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", s.getCart)
				r.Delete("/", s.clearCart)
				r.Post("/items", s.addItem)
				r.Put("/items/{id}", s.updateItem)
				r.Delete("/items/{id}", s.removeItem)
				r.Post("/checkout", s.checkout)
			})

			r.Get("/notifications", s.drainNotifications)
			r.Post("/contact", s.submitContact)

			r.Route("/chat", func(r chi.Router) {
				r.Post("/", s.openChat)
				r.Get("/{id}", s.getChat)
				r.Delete("/{id}", s.closeChat)
				r.Post("/{id}/messages", s.sendChatMessage)
				r.Put("/{id}/email", s.setChatEmail)
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", s.getPreferences)
				r.Put("/language", s.setLanguage)
				r.Put("/theme", s.setTheme)
			})
		})
	})

	r.Handle("/*", spa(s.deps.WebDir))
}

func (s *Server) getPreload(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"state":       s.deps.Gate.State(),
		"cache_valid": s.deps.Gate.IsCacheValid(r.Context()),
	})
}

func (s *Server) getTranslations(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.Parse(chi.URLParam(r, "lang"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	section := s.deps.Translator.Section(lang, chi.URLParam(r, "section"))
	if len(section) == 0 {
		s.writeError(w, r, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, section)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) Handler() http.Handler { return s.router }

type errorBody struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, domain.ErrInvalidPreference),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		msg = "service error"
	}
	writeJSON(w, status, errorBody{Error: msg})
}

// decodeJSON rejects non-JSON bodies with 415 and malformed ones with 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSON(w, http.StatusUnsupportedMediaType, errorBody{Error: "Content-Type must be application/json"})
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad json"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
