package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollectionList identifies which of a user's two Pokemon lists an entry
// belongs to.
type CollectionList string

const (
	ListFavorites CollectionList = "favorites"
	ListTeam      CollectionList = "team"
)

// TeamCapacity is the maximum number of entries in a user's team.
const TeamCapacity = 6

// CollectionEntry is a denormalized reference to a Pokemon in the external
// catalog. Name and image are snapshots taken at insertion time and are never
// refreshed. The auto-incremented ID preserves insertion order for display.
// PokemonID is an opaque reference; it is not validated against the catalog.
type CollectionEntry struct {
	ID           uint           `json:"-" gorm:"primaryKey"`
	UserID       uuid.UUID      `json:"-" gorm:"type:uuid;not null;uniqueIndex:idx_user_list_pokemon"`
	List         CollectionList `json:"-" gorm:"size:16;not null;uniqueIndex:idx_user_list_pokemon"`
	PokemonID    int            `json:"pokemonId" gorm:"not null;uniqueIndex:idx_user_list_pokemon"`
	PokemonName  string         `json:"pokemonName" gorm:"not null"`
	PokemonImage string         `json:"pokemonImage" gorm:"not null"`
	AddedAt      time.Time      `json:"addedAt" gorm:"not null"`
}
