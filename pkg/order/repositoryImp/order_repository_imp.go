package repositoryImp

import (
	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/order/repository"
)

type orderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db} }

func (r *orderRepo) FindByKitchen(kitchenID uint) (*entities.StandingOrder, error) {
	var o entities.StandingOrder
	if err := r.db.Where("kitchen_id = ?", kitchenID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Save(o *entities.StandingOrder) error { return r.db.Save(o).Error }

func (r *orderRepo) DeleteByKitchen(kitchenID uint) error {
	return r.db.Where("kitchen_id = ?", kitchenID).Delete(&entities.StandingOrder{}).Error
}

func (r *orderRepo) ListAll() ([]entities.StandingOrder, error) {
	var out []entities.StandingOrder
	return out, r.db.Find(&out).Error
}

func (r *orderRepo) History(kitchenID uint) ([]entities.OrderRecord, error) {
	var out []entities.OrderRecord
	return out, r.db.Where("kitchen_id = ?", kitchenID).
		Order("delivery_date DESC").Find(&out).Error
}

func (r *orderRepo) CreateRecord(rec *entities.OrderRecord) error {
	return r.db.Create(rec).Error
}
