package repository

import "belarro/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	Update(p *entities.Product) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Product, error)
	FindBySlug(slug string) (*entities.Product, error)
	List() ([]entities.Product, error)
	CountFeatured(excludeID uint) (int64, error)
}
