package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTP struct {
	Addr   string
	WebDir string
}

type Session struct {
	Capacity int
	Inbox    int
}

type Preload struct {
	BaseURL string
	Workers int
	Timeout time.Duration
	Step    time.Duration
}

type Chat struct {
	Capacity   int
	ReplyDelay time.Duration
	Location   string
	OpenHour   int
	CloseHour  int
}

type Checkout struct {
	Delay time.Duration
}

type Contact struct {
	Delay time.Duration
}

// Storage selects the key/value backend: "memory", "file" or "postgres".
type Storage struct {
	Backend string
	Path    string
}

type Postgres struct {
	Host     string
	Port     string
	DB       string
	User     string
	Password string
	SSLMode  string
	Schema   string
}

type Kafka struct {
	Brokers []string
	Topic   string
	Group   string
	Workers int
}

type Breaker struct {
	Threshold   uint32
	OpenTimeout time.Duration
	MaxHalfOpen uint32
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	HTTP     HTTP
	Session  Session
	Preload  Preload
	Chat     Chat
	Checkout Checkout
	Contact  Contact
	Storage  Storage

	Pg      Postgres
	Kafka   Kafka
	Breaker Breaker
	Retry   Retry
}

// Load fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTP: HTTP{
			Addr:   envDefault("HTTP_ADDR", ":8081"),
			WebDir: envDefault("WEB_DIR", "web"),
		},

		Session: Session{
			Capacity: envInt("SESSION_CAP", 10000),
			Inbox:    envInt("SESSION_INBOX", 20),
		},

		Preload: Preload{
			BaseURL: envDefault("PRELOAD_BASE_URL", "http://localhost:8081"),
			Workers: envInt("PRELOAD_WORKERS", 4),
			Timeout: envDurationMS("PRELOAD_TIMEOUT", 10*time.Second),
			Step:    envDurationMS("PRELOAD_STEP", 50*time.Millisecond),
		},

		Chat: Chat{
			Capacity:   envInt("CHAT_CAP", 1000),
			ReplyDelay: envDurationMS("CHAT_REPLY_DELAY", time.Second),
			Location:   envDefault("CHAT_TZ", "Local"),
			OpenHour:   envInt("CHAT_OPEN_HOUR", 9),
			CloseHour:  envInt("CHAT_CLOSE_HOUR", 17),
		},

		Checkout: Checkout{
			Delay: envDurationMS("CHECKOUT_DELAY", 2*time.Second),
		},

		Contact: Contact{
			Delay: envDurationMS("CONTACT_DELAY", 1500*time.Millisecond),
		},

		Storage: Storage{
			Backend: strings.ToLower(envDefault("STORAGE_BACKEND", "memory")),
			Path:    envDefault("STORAGE_PATH", "data/storage.yaml"),
		},

		Pg: Postgres{
			Host:     strings.TrimSpace(os.Getenv("PG_HOST")),
			Port:     strings.TrimSpace(envDefault("PG_PORT", "5432")),
			DB:       strings.TrimSpace(os.Getenv("PG_DB")),
			User:     strings.TrimSpace(os.Getenv("PG_USER")),
			Password: strings.TrimSpace(os.Getenv("PG_PASSWORD")),
			SSLMode:  strings.TrimSpace(envDefault("PG_SSLMODE", "disable")),
			Schema:   strings.TrimSpace(envDefault("DB_SCHEMA", "public")),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "rsrvd.checkouts"),
			Group:   envDefault("KAFKA_GROUP", "rsrvd-orders"),
			Workers: envInt("KAFKA_WORKERS", 4),
		},

		Breaker: Breaker{
			Threshold:   envUint32("BREAKER_THRESHOLD", 5),
			OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second),
			MaxHalfOpen: envUint32("BREAKER_MAXHALFOPEN", 3),
		},

		Retry: Retry{
			Attempts:     envInt("RETRY_ATTEMPTS", 5),
			Base:         envDurationMS("RETRY_BASE", 100*time.Millisecond),
			Max:          envDurationMS("RETRY_MAX", 5*time.Second),
			JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Storage.Backend == "postgres" {
		req := map[string]string{
			"PG_HOST":     c.Pg.Host,
			"PG_DB":       c.Pg.DB,
			"PG_USER":     c.Pg.User,
			"PG_PASSWORD": c.Pg.Password,
		}
		for k, v := range req {
			if strings.TrimSpace(v) == "" {
				missing = append(missing, k)
			}
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	switch c.Storage.Backend {
	case "memory", "file", "postgres":
	default:
		log.Printf("STORAGE_BACKEND is %q, adjusting to memory", c.Storage.Backend)
		c.Storage.Backend = "memory"
	}
	if c.Session.Capacity <= 0 {
		log.Printf("SESSION_CAP is %d, adjusting to 1", c.Session.Capacity)
		c.Session.Capacity = 1
	}
	if c.Chat.Capacity <= 0 {
		log.Printf("CHAT_CAP is %d, adjusting to 1", c.Chat.Capacity)
		c.Chat.Capacity = 1
	}
	if c.Preload.Workers <= 0 {
		log.Printf("PRELOAD_WORKERS is %d, adjusting to 1", c.Preload.Workers)
		c.Preload.Workers = 1
	}
	if c.Chat.OpenHour < 0 || c.Chat.CloseHour > 24 || c.Chat.OpenHour >= c.Chat.CloseHour {
		log.Printf("CHAT hours %d-%d are invalid, adjusting to 9-17", c.Chat.OpenHour, c.Chat.CloseHour)
		c.Chat.OpenHour, c.Chat.CloseHour = 9, 17
	}
	if c.Retry.Attempts < 0 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 0", c.Retry.Attempts)
		c.Retry.Attempts = 0
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
	return nil
}

// KafkaEnabled reports whether checkout events should be published.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.Topic != ""
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN builds a proper Postgres URL, safely escaping user/pass and query.
func (c Config) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return n
}

func envUint32(k string, def uint32) uint32 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	u, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d: %v", k, v, def, err)
		return def
	}
	return uint32(u)
}

func envFloat64(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.3f: %v", k, v, def, err)
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v: %v", k, v, def, err)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
