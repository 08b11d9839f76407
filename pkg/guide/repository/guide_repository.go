package repository

import "belarro/entities"

type GuideRepository interface {
	Create(a *entities.Article) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Article, error)
	List(lang string) ([]entities.Article, error)
	Search(query, lang string) ([]entities.Article, error)
}
