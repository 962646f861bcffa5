package middleware

import (
	"fmt"
	"net/http"
)

// Recover turns a panicking handler into a 500 response and keeps the
// server alive. The Connection header tells the client the connection
// will be closed after the response.
func (a *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.log.Error(r.Context(), "handler panicked", fmt.Errorf("%v", rec))

				w.Header().Set("Connection", "close")
				errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
