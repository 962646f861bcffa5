package middleware

import (
	"encoding/json"
	"net/http"
)

// errorResponse sends a JSON error body. Responses produced here never
// need extra headers, so unlike the handler package variant there is no
// headers parameter.
func errorResponse(w http.ResponseWriter, status int, message any) {
	js, err := json.Marshal(map[string]any{"error": message})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}
