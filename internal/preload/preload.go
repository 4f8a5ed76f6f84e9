package preload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/observability"
	"github.com/TemirB/rsrvd-site/internal/pkg/pool"
)

//go:generate mockgen -destination=store_mock_test.go -package=preload github.com/TemirB/rsrvd-site/internal/domain Store

// CacheDuration is how long a completed preload keeps the gate closed.
const CacheDuration = 24 * time.Hour

var DefaultAssets = []string{
	"/logo.png",
	"/about_thumb_1.jpg",
	"/about_thumb_2.jpg",
	"/branding.jpg",
	"/graphic_design.jpg",
	"/video_production.jpg",
	"/hangover.png",
	"/velvet.png",
	"/backpack.png",
	"/hoodie.png",
}

var DefaultRoutes = []string{
	"/",
	"/about",
	"/services",
	"/portfolio",
	"/contact",
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Report summarizes one preload pass.
type Report struct {
	Total  int     `json:"total"`
	Failed int     `json:"failed"`
	Ms     float64 `json:"ms"`
}

// Gate decides whether the asset preload has to run, runs it and records
// when it last completed.
type Gate struct {
	store   domain.Store
	client  HTTPDoer
	base    *url.URL
	assets  []string
	routes  []string
	workers int
	step    time.Duration
	now     func() time.Time
	logger  *zap.Logger
	metrics observability.Metrics

	state atomic.Int32
}

type Option func(*Gate)

func WithAssets(assets ...string) Option { return func(g *Gate) { g.assets = assets } }
func WithRoutes(routes ...string) Option { return func(g *Gate) { g.routes = routes } }
func WithClock(now func() time.Time) Option { return func(g *Gate) { g.now = now } }
func WithMetrics(m observability.Metrics) Option { return func(g *Gate) { g.metrics = m } }

func WithWorkers(n int) Option {
	return func(g *Gate) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithStep sets the delay between ticks of the simulated progress shown when
// the cache is still valid.
func WithStep(d time.Duration) Option { return func(g *Gate) { g.step = d } }

func New(store domain.Store, client HTTPDoer, baseURL string, logger *zap.Logger, opts ...Option) (*Gate, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	g := &Gate{
		store:   store,
		client:  client,
		base:    base,
		assets:  DefaultAssets,
		routes:  DefaultRoutes,
		workers: 4,
		step:    50 * time.Millisecond,
		now:     time.Now,
		logger:  logger,
		metrics: observability.NewNoop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Gate) State() State {
	return State(g.state.Load())
}

// IsCacheValid reports whether a preload completed less than CacheDuration
// ago. A missing or unreadable timestamp counts as invalid.
func (g *Gate) IsCacheValid(ctx context.Context) bool {
	raw, ok, err := g.store.Get(ctx, domain.KeyCacheTimestamp)
	if err != nil {
		g.logger.Warn("Can't read cache timestamp", zap.Error(err))
		ok = false
	}
	if !ok {
		g.metrics.IncCacheMiss()
		return false
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		g.logger.Warn("Bad cache timestamp", zap.String("value", raw), zap.Error(err))
		g.metrics.IncCacheMiss()
		return false
	}
	valid := g.now().UnixMilli()-ts < CacheDuration.Milliseconds()
	if valid {
		g.metrics.IncCacheHit()
	} else {
		g.metrics.IncCacheMiss()
	}
	return valid
}

// PreloadAssets fetches every asset and reports the cumulative percentage
// after each attempt. Failed fetches count as done. Once all attempts finish
// the current time is stored, unless ctx was cancelled on the way; then
// ctx.Err() is returned and the cache stays stale.
//
// progress calls are serialized under an internal lock and must not call back into
// the gate.
func (g *Gate) PreloadAssets(ctx context.Context, progress func(float64)) (Report, error) {
	g.state.Store(int32(InProgress))
	start := time.Now()

	rep := Report{Total: len(g.assets)}
	var mu sync.Mutex
	loaded := 0
	done := func(ok bool) {
		mu.Lock()
		defer mu.Unlock()
		loaded++
		if !ok {
			rep.Failed++
		}
		if progress != nil {
			progress(float64(loaded) / float64(rep.Total) * 100)
		}
	}

	p := pool.New(g.workers)
	for _, asset := range g.assets {
		asset := asset
		if err := p.Submit(ctx, func() { done(g.fetch(ctx, http.MethodGet, asset)) }); err != nil {
			g.logger.Warn("Failed to preload asset", zap.String("asset", asset), zap.Error(err))
			done(false)
		}
	}
	p.Close()
	p.Wait()

	rep.Ms = observability.SinceMs(start)
	g.metrics.ObservePreload(rep.Total, rep.Failed, rep.Ms)

	if err := ctx.Err(); err != nil {
		g.state.Store(int32(Complete))
		g.logger.Warn("Preload abandoned, cache timestamp not stored",
			zap.Int("total", rep.Total),
			zap.Int("failed", rep.Failed),
		)
		return rep, err
	}

	stamp := strconv.FormatInt(g.now().UnixMilli(), 10)
	if err := g.store.Set(ctx, domain.KeyCacheTimestamp, stamp); err != nil {
		g.state.Store(int32(Complete))
		g.logger.Error("Can't store cache timestamp", zap.Error(err))
		return rep, fmt.Errorf("store cache timestamp: %w", err)
	}
	g.state.Store(int32(Complete))

	g.logger.Info("Assets preloaded",
		zap.Int("total", rep.Total),
		zap.Int("failed", rep.Failed),
		zap.Float64("preload_ms", rep.Ms),
	)
	return rep, nil
}

// WarmupRoutes sends a HEAD to every route. Failures are logged and ignored.
func (g *Gate) WarmupRoutes(ctx context.Context) {
	p := pool.New(g.workers)
	for _, route := range g.routes {
		route := route
		if err := p.Submit(ctx, func() { g.fetch(ctx, http.MethodHead, route) }); err != nil {
			g.logger.Warn("Failed to warm up route", zap.String("route", route), zap.Error(err))
		}
	}
	p.Close()
	p.Wait()
}

// Run is the start-up sequence: preload and warm up when the cache is stale,
// otherwise play a short simulated progress.
func (g *Gate) Run(ctx context.Context, progress func(float64)) (Report, bool, error) {
	if !g.IsCacheValid(ctx) {
		rep, err := g.PreloadAssets(ctx, progress)
		g.WarmupRoutes(ctx)
		return rep, true, err
	}

	for i := 0; i <= 100; i += 10 {
		if progress != nil {
			progress(float64(i))
		}
		if i < 100 && !sleepWithContext(ctx, g.step) {
			return Report{}, false, ctx.Err()
		}
	}
	g.state.Store(int32(Complete))
	return Report{}, false, nil
}

func (g *Gate) fetch(ctx context.Context, method, path string) bool {
	u := g.base.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		g.logger.Warn("Can't build request", zap.String("url", u.String()), zap.Error(err))
		return false
	}
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("Request failed",
			zap.String("method", method),
			zap.String("url", u.String()),
			zap.Error(err),
		)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.Warn("Unexpected status",
			zap.String("method", method),
			zap.String("url", u.String()),
			zap.Int("status", resp.StatusCode),
		)
		return false
	}
	return true
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
