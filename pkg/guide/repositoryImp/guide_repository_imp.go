package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) Create(a *entities.Article) error { return r.db.Create(a).Error }

func (r *guideRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Article{}, id).Error
}

func (r *guideRepo) FindByID(id uint) (*entities.Article, error) {
	var a entities.Article
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *guideRepo) List(lang string) ([]entities.Article, error) {
	q := r.db.Order("article_id DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	var out []entities.Article
	return out, q.Find(&out).Error
}

func (r *guideRepo) Search(query, lang string) ([]entities.Article, error) {
	like := "%" + strings.ToLower(query) + "%"
	q := r.db.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ? OR LOWER(tags) LIKE ?", like, like, like).
		Order("article_id DESC")
	if lang != "" {
		q = q.Where("lang = ?", lang)
	}
	var out []entities.Article
	return out, q.Find(&out).Error
}
