package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/middleware"
	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FavoritesHandler serves both of a user's collections; the team routes are
// mounted under /favorites/team.
type FavoritesHandler struct {
	collectionService *service.CollectionService
}

func NewFavoritesHandler(collectionService *service.CollectionService) *FavoritesHandler {
	return &FavoritesHandler{collectionService: collectionService}
}

// AddEntryRequest is the catalog snapshot sent by the client on add
// operations. All three fields are required; a zero pokemonId counts as
// missing.
type AddEntryRequest struct {
	PokemonID    int    `json:"pokemonId"`
	PokemonName  string `json:"pokemonName"`
	PokemonImage string `json:"pokemonImage"`
}

type FavoritesResponse struct {
	Message   string                   `json:"message,omitempty"`
	Favorites []domain.CollectionEntry `json:"favorites"`
}

type TeamResponse struct {
	Message string                   `json:"message,omitempty"`
	Team    []domain.CollectionEntry `json:"team"`
}

func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favorites, err := h.collectionService.GetFavorites(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [favorites.GetFavorites]: %v", err)
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, FavoritesResponse{Favorites: favorites})
}

func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, input, ok := h.decodeAdd(w, r)
	if !ok {
		return
	}

	favorites, err := h.collectionService.AddFavorite(r.Context(), userID, input)
	if err != nil {
		logCollectionError("favorites.AddFavorite", err)
		respondCollectionError(w, err, domain.ListFavorites)
		return
	}

	respond.JSON(w, http.StatusOK, FavoritesResponse{
		Message:   "Pokemon added to favorites",
		Favorites: favorites,
	})
}

func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, pokemonID, ok := h.decodeRemove(w, r)
	if !ok {
		return
	}

	favorites, err := h.collectionService.RemoveFavorite(r.Context(), userID, pokemonID)
	if err != nil {
		logCollectionError("favorites.RemoveFavorite", err)
		respondCollectionError(w, err, domain.ListFavorites)
		return
	}

	respond.JSON(w, http.StatusOK, FavoritesResponse{
		Message:   "Pokemon removed from favorites",
		Favorites: favorites,
	})
}

func (h *FavoritesHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	team, err := h.collectionService.GetTeam(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [favorites.GetTeam]: %v", err)
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, TeamResponse{Team: team})
}

func (h *FavoritesHandler) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	userID, input, ok := h.decodeAdd(w, r)
	if !ok {
		return
	}

	team, err := h.collectionService.AddTeamMember(r.Context(), userID, input)
	if err != nil {
		logCollectionError("favorites.AddTeamMember", err)
		respondCollectionError(w, err, domain.ListTeam)
		return
	}

	respond.JSON(w, http.StatusOK, TeamResponse{
		Message: "Pokemon added to team",
		Team:    team,
	})
}

func (h *FavoritesHandler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	userID, pokemonID, ok := h.decodeRemove(w, r)
	if !ok {
		return
	}

	team, err := h.collectionService.RemoveTeamMember(r.Context(), userID, pokemonID)
	if err != nil {
		logCollectionError("favorites.RemoveTeamMember", err)
		respondCollectionError(w, err, domain.ListTeam)
		return
	}

	respond.JSON(w, http.StatusOK, TeamResponse{
		Message: "Pokemon removed from team",
		Team:    team,
	})
}

// decodeAdd validates the request shape at the boundary so invalid bodies
// never reach the domain layer.
func (h *FavoritesHandler) decodeAdd(w http.ResponseWriter, r *http.Request) (uuid.UUID, service.EntryInput, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, service.EntryInput{}, false
	}

	var req AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, service.EntryInput{}, false
	}

	if req.PokemonID == 0 || req.PokemonName == "" || req.PokemonImage == "" {
		respond.Error(w, http.StatusBadRequest, "Pokemon ID, name, and image are required")
		return uuid.Nil, service.EntryInput{}, false
	}

	return userID, service.EntryInput{
		PokemonID:    req.PokemonID,
		PokemonName:  req.PokemonName,
		PokemonImage: req.PokemonImage,
	}, true
}

func (h *FavoritesHandler) decodeRemove(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, 0, false
	}

	pokemonID, err := strconv.Atoi(chi.URLParam(r, "pokemonId"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid Pokemon ID")
		return uuid.Nil, 0, false
	}

	return userID, pokemonID, true
}

// respondCollectionError names the list in the duplicate and not-found
// messages; everything else goes through the shared mapping.
func respondCollectionError(w http.ResponseWriter, err error, list domain.CollectionList) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEntry):
		respond.Error(w, http.StatusBadRequest, "Pokemon already in "+string(list))
	case errors.Is(err, domain.ErrEntryNotFound):
		respond.Error(w, http.StatusNotFound, "Pokemon not found in "+string(list))
	default:
		respondError(w, err)
	}
}

// logCollectionError keeps expected rejections (duplicate, full, missing) out
// of the error log.
func logCollectionError(op string, err error) {
	switch err {
	case domain.ErrDuplicateEntry, domain.ErrTeamFull, domain.ErrEntryNotFound:
	default:
		log.Printf("ERROR [%s]: %v", op, err)
	}
}
