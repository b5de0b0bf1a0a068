package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/config"
)

// catalogTimeout bounds one upstream round trip, body read included.
const catalogTimeout = 30 * time.Second

// CatalogService is a read-through proxy to the external Pokemon catalog.
// Responses are opaque JSON passed to the client unmodified, and nothing here
// touches the persistence backend, so catalog browsing keeps working while the
// database is down.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
}

func NewCatalogService(cfg *config.Config) *CatalogService {
	return &CatalogService{
		baseURL: cfg.PokeAPIBaseURL,
		httpClient: &http.Client{
			Timeout: catalogTimeout,
		},
	}
}

func (s *CatalogService) ListPokemon(ctx context.Context, offset, limit int) (json.RawMessage, int, error) {
	return s.fetch(ctx, fmt.Sprintf("/pokemon?offset=%d&limit=%d", offset, limit))
}

func (s *CatalogService) GetPokemon(ctx context.Context, idOrName string) (json.RawMessage, int, error) {
	return s.fetch(ctx, "/pokemon/"+url.PathEscape(idOrName))
}

func (s *CatalogService) GetSpecies(ctx context.Context, idOrName string) (json.RawMessage, int, error) {
	return s.fetch(ctx, "/pokemon-species/"+url.PathEscape(idOrName))
}

func (s *CatalogService) ListTypes(ctx context.Context) (json.RawMessage, int, error) {
	return s.fetch(ctx, "/type")
}

func (s *CatalogService) GetType(ctx context.Context, idOrName string) (json.RawMessage, int, error) {
	return s.fetch(ctx, "/type/"+url.PathEscape(idOrName))
}

// fetch returns the upstream body and status code verbatim. Upstream errors
// (404 for an unknown id, say) belong to the client, not to this service.
func (s *CatalogService) fetch(ctx context.Context, path string) (json.RawMessage, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return body, resp.StatusCode, nil
}
