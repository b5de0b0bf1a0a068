package postgres

import (
	"github.com/Daikoman-palanarame2/Pokedex/internal/repository"
	"gorm.io/gorm"
)

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(db),
		Collection: NewCollectionRepository(db),
	}
}
