package chat

import (
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/i18n"
)

const (
	cannedReply     = "Thank you for your message. One of our agents will respond shortly."
	defaultCapacity = 1000
)

// Conversation is a snapshot of one chat session.
type Conversation struct {
	ID       string           `json:"id"`
	Language i18n.Language    `json:"language"`
	Online   bool             `json:"online"`
	Email    string           `json:"email,omitempty"`
	Messages []domain.Message `json:"messages"`
}

type session struct {
	conv   Conversation
	nextID int
	// pending agent replies keyed by the visitor message they answer
	pending map[int]*time.Timer
}

func (s *session) stop() {
	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
}

func (s *session) append(text string, from domain.Sender, at time.Time) domain.Message {
	s.nextID++
	m := domain.Message{ID: s.nextID, Text: text, Sender: from, Timestamp: at}
	s.conv.Messages = append(s.conv.Messages, m)
	return m
}

func (s *session) snapshot() Conversation {
	c := s.conv
	c.Messages = make([]domain.Message, len(s.conv.Messages))
	copy(c.Messages, s.conv.Messages)
	return c
}

// Service keeps the open conversations in an LRU. The least recently used
// chat is dropped when capacity is reached, with its pending replies.
type Service struct {
	mu       sync.Mutex
	sessions *lru.Cache[string, *session]
	capacity int

	tr         *i18n.Translator
	hours      Hours
	replyDelay time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCapacity caps the number of open conversations. Values below 1 keep
// the default.
func WithCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func New(tr *i18n.Translator, hours Hours, replyDelay time.Duration, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		capacity:   defaultCapacity,
		tr:         tr,
		hours:      hours,
		replyDelay: replyDelay,
		now:        time.Now,
		logger:     logger,
	}
	for _, o := range opts {
		o(s)
	}
	// capacity is always positive, so this cannot fail.
	s.sessions, _ = lru.NewWithEvict[string, *session](s.capacity, s.onEvict)
	return s
}

// onEvict runs under s.mu for both Close and capacity eviction.
func (s *Service) onEvict(id string, sess *session) {
	sess.stop()
	s.logger.Debug("Chat dropped", zap.String("chat_id", id))
}

func (s *Service) Online() bool {
	return s.hours.IsOnline(s.now())
}

// Open starts a conversation. Its first message is the localized greeting,
// or the offline notice outside support hours.
func (s *Service) Open(lang i18n.Language) Conversation {
	if !lang.Valid() {
		lang = i18n.Default
	}
	now := s.now()
	online := s.hours.IsOnline(now)

	sess := &session{
		conv: Conversation{
			ID:       uuid.NewString(),
			Language: lang,
			Online:   online,
		},
		pending: make(map[int]*time.Timer),
	}
	first := s.tr.T(lang, "liveChat", "greeting")
	if !online {
		first = s.tr.T(lang, "liveChat", "offlineMessage")
	}
	sess.append(first, domain.SenderAgent, now)

	s.mu.Lock()
	s.sessions.Add(sess.conv.ID, sess)
	s.mu.Unlock()

	s.logger.Info("Chat opened",
		zap.String("chat_id", sess.conv.ID),
		zap.String("language", string(lang)),
		zap.Bool("online", online),
	)
	return sess.snapshot()
}

// Send appends a visitor message. While support is online an agent reply
// follows after the reply delay.
func (s *Service) Send(id, text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return domain.Message{}, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	now := s.now()
	m := sess.append(text, domain.SenderUser, now)

	if s.hours.IsOnline(now) {
		sess.pending[m.ID] = time.AfterFunc(s.replyDelay, func() {
			s.reply(id, m.ID)
		})
	}
	return m, nil
}

func (s *Service) reply(id string, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Peek(id)
	if !ok {
		return
	}
	if _, ok := sess.pending[to]; !ok {
		return
	}
	delete(sess.pending, to)
	sess.append(cannedReply, domain.SenderAgent, s.now())
	s.logger.Debug("Chat reply sent", zap.String("chat_id", id))
}

// SetEmail records where an offline visitor wants the answer.
func (s *Service) SetEmail(id, email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return fmt.Errorf("%q: %w", email, domain.ErrInvalidEmail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	sess.conv.Email = addr.Address
	return nil
}

func (s *Service) Get(id string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return Conversation{}, fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	return sess.snapshot(), nil
}

// Close drops the conversation and cancels pending replies.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	ok := s.sessions.Remove(id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	s.logger.Info("Chat closed", zap.String("chat_id", id))
	return nil
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
