package middleware

import (
	"net/http"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/database"
)

// ConnStateSource is the injected accessor for the process-wide connectivity
// state. *database.Tracker satisfies it.
type ConnStateSource interface {
	State() database.ConnState
}

// DatabaseGuard short-circuits store-backed routes while the persistence
// backend is not connected. This is a point-in-time local check, not a lock:
// the connection can still drop before the store call, in which case the
// repository layer reports the failure instead.
func DatabaseGuard(state ConnStateSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if state.State() != database.StateConnected {
				respond.ErrorCode(w, http.StatusServiceUnavailable,
					"Database not available. Please try again later or contact support.",
					"DATABASE_UNAVAILABLE")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
