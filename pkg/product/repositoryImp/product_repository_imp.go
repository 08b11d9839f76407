package repositoryImp

import (
	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) Update(p *entities.Product) error { return r.db.Save(p).Error }

func (r *productRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Product{}, id).Error
}

func (r *productRepo) FindByID(id uint) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindBySlug(slug string) (*entities.Product, error) {
	var p entities.Product
	if err := r.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List() ([]entities.Product, error) {
	var out []entities.Product
	return out, r.db.Order("sort_order ASC, product_id ASC").Find(&out).Error
}

func (r *productRepo) CountFeatured(excludeID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Product{}).
		Where("featured_homepage = ? AND product_id <> ?", true, excludeID).
		Count(&n).Error
	return n, err
}
