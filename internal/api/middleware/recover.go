package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
)

// Recover converts a panic into a JSON 500. The panic value and stack go to
// the log; the response carries detail only in development mode.
func Recover(development bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("ERROR [middleware.Recover] panic: %v\n%s", rec, debug.Stack())

					message := "Internal server error"
					if development {
						message = fmt.Sprintf("Internal server error: %v", rec)
					}
					respond.Error(w, http.StatusInternalServerError, message)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
