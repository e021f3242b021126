// Package middleware holds cross-cutting HTTP middleware: CORS, request
// logging, and metrics recording.
package middleware

import "net/http"

// CORS returns middleware that answers cross-origin requests for the given
// origin. OPTIONS preflight requests are answered with 204 without reaching
// the handler. The Authorization header must be allowed so the SPA can send
// bearer tokens.
func CORS(allowedOrigin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
