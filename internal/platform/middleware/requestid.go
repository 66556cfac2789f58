package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"phonebook/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID (taken from the inbound header when
// present) and records the request time, so timestamps and log lines within
// one request agree.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(requestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
