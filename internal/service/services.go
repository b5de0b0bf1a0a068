package service

import (
	"github.com/Daikoman-palanarame2/Pokedex/internal/config"
	"github.com/Daikoman-palanarame2/Pokedex/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Collection *CollectionService
	Catalog    *CatalogService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, cfg),
		Collection: NewCollectionService(repos.Collection),
		Catalog:    NewCatalogService(cfg),
	}
}
