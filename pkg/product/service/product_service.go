package service

import (
	"errors"

	"belarro/entities"
)

// ErrFeaturedLimit is returned when saving a product would push the homepage
// past its featured cap.
var ErrFeaturedLimit = errors.New("maximum 6 products can be featured on the homepage")

type ProductService interface {
	Create(p *entities.Product) (*entities.Product, error)
	Update(p *entities.Product) (*entities.Product, error)
	Delete(id uint) error
	Get(id uint) (*entities.Product, error)
	GetBySlug(slug string) (*entities.Product, error)
	// ListAdmin returns every product regardless of availability.
	ListAdmin() ([]entities.Product, error)
	// ListPublic returns available and seasonal products, localized and
	// optionally filtered by category or tag.
	ListPublic(lang, category, tag string) ([]entities.Product, error)
	// Featured returns the homepage selection, capped.
	Featured(lang string) ([]entities.Product, error)
	Tags() ([]string, error)
}
