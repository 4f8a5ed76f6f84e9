package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObservePreload(assets, failed int, durMs float64)
	ObserveCheckout(durMs float64, ok bool)
	ObserveKafka(processMs float64, ok bool)
	IncCacheHit()
	IncCacheMiss()
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObservePreload(int, int, float64)         {}
func (Noop) ObserveCheckout(float64, bool)            {}
func (Noop) ObserveKafka(float64, bool)               {}
func (Noop) IncCacheHit()                             {}
func (Noop) IncCacheMiss()                            {}
