package handlers

import (
	"net/http"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/middleware"
	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/database"
)

type HealthHandler struct {
	state middleware.ConnStateSource
}

func NewHealthHandler(state middleware.ConnStateSource) *HealthHandler {
	return &HealthHandler{state: state}
}

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	DBConnected bool   `json:"dbConnected"`
}

// Check always answers 200; a down database is reported in the payload, not
// as a failure, so the client can render its degraded-mode banner.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:      "OK",
		Message:     "Pokedex API is running!",
		DBConnected: h.state.State() == database.StateConnected,
	})
}
