package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/catchup-chat/catchup/internal/metrics"
	"github.com/catchup-chat/catchup/internal/tools"
)

// statusWriter wraps http.ResponseWriter to capture status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Metrics returns middleware that records Prometheus metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method, path, strconv.Itoa(wrapped.status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method, path,
		).Observe(duration)
	})
}

// knownPaths are the fixed routes the gateway serves. Everything else is
// folded into a catch-all label to keep metric cardinality bounded.
var knownPaths = map[string]bool{
	"/":        true,
	"/health":  true,
	"/metrics": true,
	"/tools":   true,
}

var knownTools = func() map[string]bool {
	m := make(map[string]bool)
	for _, t := range tools.Catalog() {
		m[t.Name] = true
	}
	return m
}()

func normalizePath(path string) string {
	if knownPaths[path] {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/tools/"); ok {
		if knownTools[rest] {
			return path
		}
		return "/tools/{tool}"
	}
	return "/other"
}
