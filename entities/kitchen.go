package entities

import "time"

const (
	KitchenActive = "active"
	KitchenPaused = "paused"
)

type Kitchen struct {
	KitchenID    uint   `gorm:"primaryKey" json:"kitchen_id"`
	KitchenName  string `json:"kitchen_name"`
	DeliveryDay  string `json:"delivery_day"` // monday..friday
	Status       string `json:"status" gorm:"index"` // active|paused
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
