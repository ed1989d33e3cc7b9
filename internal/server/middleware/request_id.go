package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-Id"

// RequestID stamps every request and response with an identifier so log
// lines and client reports can be correlated. Caller-supplied identifiers
// are kept.
func RequestID() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(requestIDHeader, id)
			}
			rw.Header().Set(requestIDHeader, id)
			h.ServeHTTP(rw, r)
		})
	}
}
