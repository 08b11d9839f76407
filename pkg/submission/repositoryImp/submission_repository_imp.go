package repositoryImp

import (
	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/submission/repository"
)

type submissionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SubmissionRepository { return &submissionRepo{db} }

func (r *submissionRepo) Create(s *entities.Submission) error { return r.db.Create(s).Error }

func (r *submissionRepo) Update(s *entities.Submission) error { return r.db.Save(s).Error }

func (r *submissionRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Submission{}, id).Error
}

func (r *submissionRepo) FindByID(id uint) (*entities.Submission, error) {
	var s entities.Submission
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepo) List(status string) ([]entities.Submission, error) {
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entities.Submission
	return out, q.Find(&out).Error
}

func (r *submissionRepo) CountUnread() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Submission{}).
		Where("status = ? AND viewed = ?", entities.SubmissionNew, false).
		Count(&n).Error
	return n, err
}
