package repository

import (
	"context"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type CollectionRepository interface {
	List(ctx context.Context, userID uuid.UUID, list domain.CollectionList) ([]domain.CollectionEntry, error)
	Add(ctx context.Context, entry *domain.CollectionEntry) error
	// Remove deletes the entry for pokemonID and reports whether one existed.
	Remove(ctx context.Context, userID uuid.UUID, list domain.CollectionList, pokemonID int) (bool, error)
}

type Repositories struct {
	User       UserRepository
	Collection CollectionRepository
}
