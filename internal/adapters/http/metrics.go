package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sudoku_http_requests_total",
		Help: "HTTP requests served, by path and status code.",
	}, []string{"path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sudoku_http_request_duration_seconds",
		Help:    "HTTP request latency, by path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
)

// statusWriter captures the HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Instrument records request count and latency per path.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(sw.status)).Inc()
		requestDuration.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
