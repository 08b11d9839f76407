package repositoryImp

import (
	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/kitchen/repository"
)

type kitchenRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KitchenRepository { return &kitchenRepo{db} }

func (r *kitchenRepo) Create(k *entities.Kitchen) error { return r.db.Create(k).Error }

func (r *kitchenRepo) Update(k *entities.Kitchen) error { return r.db.Save(k).Error }

func (r *kitchenRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Kitchen{}, id).Error
}

func (r *kitchenRepo) FindByID(id uint) (*entities.Kitchen, error) {
	var k entities.Kitchen
	if err := r.db.First(&k, id).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *kitchenRepo) List() ([]entities.Kitchen, error) {
	var out []entities.Kitchen
	return out, r.db.Order("kitchen_name ASC").Find(&out).Error
}

func (r *kitchenRepo) ListActive() ([]entities.Kitchen, error) {
	var out []entities.Kitchen
	return out, r.db.Where("status = ?", entities.KitchenActive).
		Order("kitchen_name ASC").Find(&out).Error
}
