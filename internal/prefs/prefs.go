package prefs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/i18n"
)

// Service keeps per-visitor preferences in the shared key/value store.
// Keys are namespaced by session id.
type Service struct {
	store  domain.Store
	logger *zap.Logger
}

func New(store domain.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func key(sid, name string) string {
	return sid + ":" + name
}

// Language returns the stored language when it is still supported,
// otherwise the one negotiated from acceptLanguage.
func (s *Service) Language(ctx context.Context, sid, acceptLanguage string) i18n.Language {
	v, ok, err := s.store.Get(ctx, key(sid, domain.KeyPreferredLanguage))
	if err != nil {
		s.logger.Warn("Failed to read language preference",
			zap.String("session", sid),
			zap.Error(err),
		)
	}
	if ok {
		if l, err := i18n.Parse(v); err == nil {
			return l
		}
	}
	return i18n.Negotiate(acceptLanguage)
}

func (s *Service) SetLanguage(ctx context.Context, sid, value string) (i18n.Language, error) {
	l, err := i18n.Parse(value)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, key(sid, domain.KeyPreferredLanguage), string(l)); err != nil {
		return "", fmt.Errorf("store language: %w", err)
	}
	s.logger.Debug("Language preference saved", zap.String("session", sid), zap.String("language", string(l)))
	return l, nil
}

// Theme defaults to system when nothing valid is stored.
func (s *Service) Theme(ctx context.Context, sid string) domain.Theme {
	v, ok, err := s.store.Get(ctx, key(sid, domain.KeyTheme))
	if err != nil {
		s.logger.Warn("Failed to read theme preference",
			zap.String("session", sid),
			zap.Error(err),
		)
		return domain.ThemeSystem
	}
	if t := domain.Theme(v); ok && t.Valid() {
		return t
	}
	return domain.ThemeSystem
}

func (s *Service) SetTheme(ctx context.Context, sid, value string) (domain.Theme, error) {
	t := domain.Theme(value)
	if !t.Valid() {
		return "", fmt.Errorf("theme %q: %w", value, domain.ErrInvalidPreference)
	}
	if err := s.store.Set(ctx, key(sid, domain.KeyTheme), string(t)); err != nil {
		return "", fmt.Errorf("store theme: %w", err)
	}
	s.logger.Debug("Theme preference saved", zap.String("session", sid), zap.String("theme", string(t)))
	return t, nil
}
