package repository

import "belarro/entities"

type SubmissionRepository interface {
	Create(s *entities.Submission) error
	Update(s *entities.Submission) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Submission, error)
	List(status string) ([]entities.Submission, error)
	CountUnread() (int64, error)
}
