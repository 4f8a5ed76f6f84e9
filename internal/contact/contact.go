package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/notify"
)

const sent = "Your message has been sent! We'll get back to you soon."

// Service takes contact form submissions. Delivery is simulated: the
// message is logged after a short delay and the visitor gets a toast.
type Service struct {
	delay  time.Duration
	logger *zap.Logger
}

func New(delay time.Duration, logger *zap.Logger) *Service {
	return &Service{delay: delay, logger: logger}
}

func (s *Service) Submit(ctx context.Context, msg domain.ContactMessage, notifier domain.Notifier) error {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	msg, err := validate(msg)
	if err != nil {
		return err
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	s.logger.Info("Contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("message_len", len(msg.Message)),
	)
	notifier.Notify(notify.Success(sent))
	return nil
}

func validate(msg domain.ContactMessage) (domain.ContactMessage, error) {
	fields := []struct {
		name string
		val  *string
	}{
		{"name", &msg.Name},
		{"email", &msg.Email},
		{"phone", &msg.Phone},
		{"subject", &msg.Subject},
		{"message", &msg.Message},
	}
	for _, f := range fields {
		*f.val = strings.TrimSpace(*f.val)
		if *f.val == "" {
			return msg, fmt.Errorf("%s: %w", f.name, domain.ErrMissingField)
		}
	}

	addr, err := mail.ParseAddress(msg.Email)
	if err != nil {
		return msg, fmt.Errorf("%q: %w", msg.Email, domain.ErrInvalidEmail)
	}
	msg.Email = addr.Address
	return msg, nil
}
