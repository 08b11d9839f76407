package entities

import "time"

const (
	RoleAdmin = "admin"
	RoleChef  = "chef"
)

const (
	UserActive   = "active"
	UserDisabled = "disabled"
)

type User struct {
	UserID       uint      `gorm:"primaryKey" json:"user_id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash []byte    `json:"-"`
	Role         string    `json:"role"` // admin|chef
	KitchenID    *uint     `json:"kitchen_id"` // chefs belong to one kitchen
	Status       string    `json:"status"`     // active|disabled
	CreatedAt    time.Time `json:"created_at"`
}
