package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/goto/searchable/pkg/statsd"
)

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *interceptedResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Monitoring pushes response time and status code per route to statsd.
func Monitoring(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &interceptedResponseWriter{ResponseWriter: rw, statusCode: http.StatusOK}
			h.ServeHTTP(wrapped, r)

			reporter.Timing("httpRequest", time.Since(start)).
				Tag("method", r.Method).
				Tag("path", r.URL.Path).
				Tag("status", strconv.Itoa(wrapped.statusCode)).
				Publish()
		})
	}
}
