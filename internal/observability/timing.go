package observability

import (
	"fmt"
	"net/http"
	"time"
)

// SinceMs is the elapsed time since t in fractional milliseconds.
func SinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}

// AppendServerTiming adds one Server-Timing entry. Entries with neither a
// positive duration nor a description are skipped.
func AppendServerTiming(w http.ResponseWriter, name string, durMs float64, desc string) {
	var entry string
	switch {
	case durMs > 0 && desc != "":
		entry = fmt.Sprintf("%s;dur=%.2f;desc=%q", name, durMs, desc)
	case durMs > 0:
		entry = fmt.Sprintf("%s;dur=%.2f", name, durMs)
	case desc != "":
		entry = fmt.Sprintf("%s;desc=%q", name, desc)
	default:
		return
	}
	w.Header().Add("Server-Timing", entry)
}

func SetIfPos(w http.ResponseWriter, key string, ms float64) {
	if ms > 0 {
		w.Header().Set(key, fmt.Sprintf("%.2f", ms))
	}
}
