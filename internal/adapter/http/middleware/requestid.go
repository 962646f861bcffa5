package middleware

import (
	"net/http"

	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
	"github.com/Bekzhan-O/tutor-dashboard/pkg/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request id to the context so every log line of
// the request carries it. A client-supplied X-Request-ID is reused,
// otherwise a fresh one is generated. The id is echoed back in the
// response header.
func (a *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.MustNew().String()
		}

		w.Header().Set(requestIDHeader, id)

		ctx := wrap.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
