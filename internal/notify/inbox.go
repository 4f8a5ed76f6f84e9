package notify

import (
	"sync"
	"time"

	"github.com/TemirB/rsrvd-site/internal/domain"
)

// Inbox keeps the last max notifications for one visitor until the UI drains
// them. Older entries are dropped first.
type Inbox struct {
	mu   sync.Mutex
	last []domain.Notification
	max  int
	now  func() time.Time
}

func NewInbox(max int) *Inbox {
	return &Inbox{
		max: max,
		now: time.Now,
	}
}

func (i *Inbox) Notify(n domain.Notification) {
	if n.At.IsZero() {
		n.At = i.now()
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.last = append(i.last, n)
	if len(i.last) > i.max {
		i.last = i.last[len(i.last)-i.max:]
	}
}

func (i *Inbox) Drain() []domain.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]domain.Notification, len(i.last))
	copy(out, i.last)
	i.last = i.last[:0]
	return out
}

func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.last)
}

func Success(msg string) domain.Notification {
	return domain.Notification{Level: domain.LevelSuccess, Message: msg}
}

func Info(msg string) domain.Notification {
	return domain.Notification{Level: domain.LevelInfo, Message: msg}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(domain.Notification) {}
