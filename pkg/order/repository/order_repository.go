package repository

import "belarro/entities"

type OrderRepository interface {
	FindByKitchen(kitchenID uint) (*entities.StandingOrder, error)
	Save(o *entities.StandingOrder) error
	DeleteByKitchen(kitchenID uint) error
	ListAll() ([]entities.StandingOrder, error)

	History(kitchenID uint) ([]entities.OrderRecord, error)
	CreateRecord(rec *entities.OrderRecord) error
}
