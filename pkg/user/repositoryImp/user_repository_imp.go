package repositoryImp

import (
	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) Update(u *entities.User) error { return r.db.Save(u).Error }

func (r *userRepo) Delete(id uint) error {
	return r.db.Delete(&entities.User{}, id).Error
}

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List() ([]entities.User, error) {
	var out []entities.User
	return out, r.db.Order("created_at DESC").Find(&out).Error
}
