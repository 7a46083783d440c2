package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/marketconnect/backend/api/responses"
)

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports liveness plus a store readiness detail.
func Health(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status":  "OK",
			"message": "Server is running",
		}

		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				body["database"] = "unreachable"
			} else {
				body["database"] = "connected"
			}
		}

		responses.WriteJSON(w, http.StatusOK, body)
	}
}
