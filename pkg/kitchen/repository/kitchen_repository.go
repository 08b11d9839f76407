package repository

import "belarro/entities"

type KitchenRepository interface {
	Create(k *entities.Kitchen) error
	Update(k *entities.Kitchen) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Kitchen, error)
	List() ([]entities.Kitchen, error)
	ListActive() ([]entities.Kitchen, error)
}
