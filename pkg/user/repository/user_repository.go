package repository

import "belarro/entities"

type UserRepository interface {
	Create(u *entities.User) error
	Update(u *entities.User) error
	Delete(id uint) error
	FindByID(id uint) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	List() ([]entities.User, error)
}
