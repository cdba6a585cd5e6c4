// Package health serves the liveness probe at /healthz.
package health

import (
	"encoding/json"
	"net/http"
)

// Response is the probe body.
type Response struct {
	Status string `json:"status"`
}

// Handler answers the liveness probe. It stays outside the huma API so the
// probe does not depend on the API layer.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Status: "healthy"})
}
