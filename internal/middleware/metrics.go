package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestRecorder receives one observation per completed request.
type RequestRecorder interface {
	RecordRequest(method string, status int, duration time.Duration)
}

// Metrics records request counts and latency through the given recorder.
func Metrics(recorder RequestRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			recorder.RecordRequest(r.Method, ww.Status(), time.Since(start))
		})
	}
}
