package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"github.com/Daikoman-palanarame2/Pokedex/internal/service"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler passes external catalog responses through unmodified. These
// routes are deliberately outside the database guard: browsing keeps working
// while the store is down.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	body, status, err := h.catalogService.ListPokemon(r.Context(), offset, limit)
	h.write(w, body, status, err, "catalog.List")
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	body, status, err := h.catalogService.GetPokemon(r.Context(), chi.URLParam(r, "idOrName"))
	h.write(w, body, status, err, "catalog.Get")
}

func (h *CatalogHandler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	body, status, err := h.catalogService.GetSpecies(r.Context(), chi.URLParam(r, "idOrName"))
	h.write(w, body, status, err, "catalog.GetSpecies")
}

func (h *CatalogHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	body, status, err := h.catalogService.ListTypes(r.Context())
	h.write(w, body, status, err, "catalog.ListTypes")
}

func (h *CatalogHandler) GetType(w http.ResponseWriter, r *http.Request) {
	body, status, err := h.catalogService.GetType(r.Context(), chi.URLParam(r, "idOrName"))
	h.write(w, body, status, err, "catalog.GetType")
}

func (h *CatalogHandler) write(w http.ResponseWriter, body json.RawMessage, status int, err error, op string) {
	if err != nil {
		log.Printf("ERROR [%s]: %v", op, err)
		respond.Error(w, http.StatusBadGateway, "Pokemon catalog is unreachable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
