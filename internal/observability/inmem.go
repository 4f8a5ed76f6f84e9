package observability

import "sync"

type observe struct {
	Kind          string
	Method, Route string
	Status        int
	Count, Failed int
	Dur           float64
	OK            bool
}

// Inmem keeps the last max observations plus cache gate counters.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObservePreload(assets, failed int, durMs float64) {
	m.push(&observe{Kind: "preload", Count: assets, Failed: failed, Dur: durMs, OK: failed == 0})
}

func (m *Inmem) ObserveCheckout(durMs float64, ok bool) {
	m.push(&observe{Kind: "checkout", Dur: durMs, OK: ok})
}

func (m *Inmem) ObserveKafka(processMs float64, ok bool) {
	m.push(&observe{Kind: "kafka", Dur: processMs, OK: ok})
}

func (m *Inmem) IncCacheHit() {
	m.mu.Lock()
	m.totals.cacheHits++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss() {
	m.mu.Lock()
	m.totals.cacheMiss++
	m.mu.Unlock()
}

// Snapshot returns the cache gate counters and how many observations are held.
func (m *Inmem) Snapshot() (hits, misses, held int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits, m.totals.cacheMiss, len(m.last)
}
