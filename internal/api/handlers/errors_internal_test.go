package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A dropped connection mid-flight must surface as the availability taxonomy
// with its machine-readable code, never as a generic server error.
func TestRespondError_AvailabilityTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantContains string
	}{
		{
			name:         "store timeout mid-flight",
			err:          domain.ErrDatabaseTimeout,
			wantStatus:   http.StatusServiceUnavailable,
			wantCode:     "DATABASE_TIMEOUT",
			wantContains: "timeout",
		},
		{
			name:         "store unreachable mid-flight",
			err:          domain.ErrDatabaseUnavailable,
			wantStatus:   http.StatusServiceUnavailable,
			wantCode:     "DATABASE_UNAVAILABLE",
			wantContains: "not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			respondError(rr, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)

			var body struct {
				Message string `json:"message"`
				Code    string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Contains(t, body.Message, tt.wantContains)
		})
	}
}

func TestRespondError_UnknownErrorSuppressed(t *testing.T) {
	rr := httptest.NewRecorder()
	respondError(rr, errors.New("pq: deadlock detected on relation users"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body.Message)
	assert.NotContains(t, rr.Body.String(), "deadlock")
}
