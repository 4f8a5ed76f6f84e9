package session

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/cart"
	"github.com/TemirB/rsrvd-site/internal/notify"
)

// Session is the server-side half of a visitor's browser state.
type Session struct {
	ID    string
	Cart  *cart.Cart
	Inbox *notify.Inbox
}

// Registry keeps the most recently used sessions in memory. Evicted sessions
// are gone for good, just like a closed browser tab.
type Registry struct {
	inboxSize int
	lru       *lru.Cache[string, *Session]
	logger    *zap.Logger
}

func New(size, inboxSize int, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		inboxSize: inboxSize,
		logger:    logger,
	}
	c, err := lru.NewWithEvict[string, *Session](size, r.onEvict)
	if err != nil {
		return nil, err
	}
	r.lru = c
	return r, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	return r.lru.Get(id)
}

// GetOrCreate returns the session for id, starting a new one under that id
// when it is unknown. An empty id always gets a fresh one.
func (r *Registry) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, ok := r.lru.Get(id); ok {
			return s, false
		}
	} else {
		id = uuid.NewString()
	}
	s := r.newSession(id)
	// Another request may have raced us to the same id.
	if prev, ok, _ := r.lru.PeekOrAdd(id, s); ok {
		return prev, false
	}
	return s, true
}

func (r *Registry) New() *Session {
	s := r.newSession(uuid.NewString())
	r.lru.Add(s.ID, s)
	return s
}

func (r *Registry) Len() int {
	return r.lru.Len()
}

func (r *Registry) newSession(id string) *Session {
	inbox := notify.NewInbox(r.inboxSize)
	return &Session{
		ID:    id,
		Cart:  cart.New(inbox),
		Inbox: inbox,
	}
}

func (r *Registry) onEvict(id string, s *Session) {
	r.logger.Debug("session evicted",
		zap.String("session_id", id),
		zap.Int("cart_items", s.Cart.Len()),
	)
}
