package handlers

import (
	"errors"
	"net/http"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
)

// respondError maps domain errors to the API's status codes. Anything outside
// the taxonomy is a 500 with the detail suppressed; callers log the original.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		respond.Error(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, domain.ErrUsernameTaken):
		respond.Error(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respond.Error(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, domain.ErrDuplicateEntry):
		respond.Error(w, http.StatusBadRequest, "Pokemon already in list")
	case errors.Is(err, domain.ErrTeamFull):
		respond.Error(w, http.StatusBadRequest, "Team is full (maximum 6 Pokemon)")
	case errors.Is(err, domain.ErrEntryNotFound):
		respond.Error(w, http.StatusNotFound, "Pokemon not found in list")
	case errors.Is(err, domain.ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrInvalidToken):
		respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrDatabaseTimeout):
		respond.ErrorCode(w, http.StatusServiceUnavailable,
			"Database connection timeout. Please try again later.", "DATABASE_TIMEOUT")
	case errors.Is(err, domain.ErrDatabaseUnavailable):
		respond.ErrorCode(w, http.StatusServiceUnavailable,
			"Database not available. Please try again later or contact support.", "DATABASE_UNAVAILABLE")
	default:
		respond.Error(w, http.StatusInternalServerError, "Server error")
	}
}
