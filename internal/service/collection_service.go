package service

import (
	"context"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/Daikoman-palanarame2/Pokedex/internal/repository"
	"github.com/google/uuid"
)

// CollectionService enforces the membership invariants on a user's two
// Pokemon lists: no duplicate pokemonId within a list, and at most
// domain.TeamCapacity team members. Mutations are read-modify-write against
// the user's rows; two concurrent mutations on the same user race with
// whatever a single-row insert/delete guarantees, last write wins. The unique
// index on (user_id, list, pokemon_id) is the backstop against duplicates.
type CollectionService struct {
	collectionRepo repository.CollectionRepository
}

func NewCollectionService(collectionRepo repository.CollectionRepository) *CollectionService {
	return &CollectionService{collectionRepo: collectionRepo}
}

// EntryInput is the catalog snapshot captured at insertion time.
type EntryInput struct {
	PokemonID    int
	PokemonName  string
	PokemonImage string
}

func (s *CollectionService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]domain.CollectionEntry, error) {
	return s.collectionRepo.List(ctx, userID, domain.ListFavorites)
}

func (s *CollectionService) GetTeam(ctx context.Context, userID uuid.UUID) ([]domain.CollectionEntry, error) {
	return s.collectionRepo.List(ctx, userID, domain.ListTeam)
}

func (s *CollectionService) AddFavorite(ctx context.Context, userID uuid.UUID, input EntryInput) ([]domain.CollectionEntry, error) {
	return s.add(ctx, userID, domain.ListFavorites, input)
}

func (s *CollectionService) RemoveFavorite(ctx context.Context, userID uuid.UUID, pokemonID int) ([]domain.CollectionEntry, error) {
	return s.remove(ctx, userID, domain.ListFavorites, pokemonID)
}

func (s *CollectionService) AddTeamMember(ctx context.Context, userID uuid.UUID, input EntryInput) ([]domain.CollectionEntry, error) {
	return s.add(ctx, userID, domain.ListTeam, input)
}

func (s *CollectionService) RemoveTeamMember(ctx context.Context, userID uuid.UUID, pokemonID int) ([]domain.CollectionEntry, error) {
	return s.remove(ctx, userID, domain.ListTeam, pokemonID)
}

func (s *CollectionService) add(ctx context.Context, userID uuid.UUID, list domain.CollectionList, input EntryInput) ([]domain.CollectionEntry, error) {
	entries, err := s.collectionRepo.List(ctx, userID, list)
	if err != nil {
		return nil, err
	}

	if list == domain.ListTeam && len(entries) >= domain.TeamCapacity {
		return nil, domain.ErrTeamFull
	}
	for _, e := range entries {
		if e.PokemonID == input.PokemonID {
			return nil, domain.ErrDuplicateEntry
		}
	}

	entry := &domain.CollectionEntry{
		UserID:       userID,
		List:         list,
		PokemonID:    input.PokemonID,
		PokemonName:  input.PokemonName,
		PokemonImage: input.PokemonImage,
		AddedAt:      time.Now(),
	}
	if err := s.collectionRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	return s.collectionRepo.List(ctx, userID, list)
}

func (s *CollectionService) remove(ctx context.Context, userID uuid.UUID, list domain.CollectionList, pokemonID int) ([]domain.CollectionEntry, error) {
	removed, err := s.collectionRepo.Remove(ctx, userID, list, pokemonID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domain.ErrEntryNotFound
	}

	return s.collectionRepo.List(ctx, userID, list)
}
