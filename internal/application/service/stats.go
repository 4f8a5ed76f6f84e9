package service

import "time"

type CheckoutStats struct {
	WaitMs    float64
	PublishMs float64
	TotalMs   float64
	Published bool
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
