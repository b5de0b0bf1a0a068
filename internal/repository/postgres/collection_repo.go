package postgres

import (
	"context"

	"github.com/Daikoman-palanarame2/Pokedex/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *collectionRepository {
	return &collectionRepository{db: db}
}

// List returns the entries in insertion order. The surrogate primary key is
// the order source; AddedAt alone is not unique enough within one request.
func (r *collectionRepository) List(ctx context.Context, userID uuid.UUID, list domain.CollectionList) ([]domain.CollectionEntry, error) {
	entries := make([]domain.CollectionEntry, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND list = ?", userID, list).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, translate(err)
	}
	return entries, nil
}

func (r *collectionRepository) Add(ctx context.Context, entry *domain.CollectionEntry) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *collectionRepository) Remove(ctx context.Context, userID uuid.UUID, list domain.CollectionList, pokemonID int) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND list = ? AND pokemon_id = ?", userID, list, pokemonID).
		Delete(&domain.CollectionEntry{})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}
