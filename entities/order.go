package entities

import "time"

// OrderItem is one line of a standing order. Quantity is always positive;
// dropping a quantity to zero removes the line instead of keeping it.
type OrderItem struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// StandingOrder is a kitchen's default recurring weekly order. Each kitchen
// has at most one.
type StandingOrder struct {
	OrderID   uint        `gorm:"primaryKey" json:"order_id"`
	KitchenID uint        `gorm:"uniqueIndex" json:"kitchen_id"`
	Items     []OrderItem `gorm:"serializer:json" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

const (
	OrderDelivered = "delivered"
	OrderInvoiced  = "invoiced"
	OrderPaid      = "paid"
)

// HistoryItem snapshots a delivered line including the product name at the
// time of delivery, so history survives catalog edits.
type HistoryItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
}

// OrderRecord is a delivered week of a kitchen's standing order. Read-only.
type OrderRecord struct {
	RecordID     uint          `gorm:"primaryKey" json:"record_id"`
	KitchenID    uint          `gorm:"index" json:"kitchen_id"`
	DeliveryDate time.Time     `json:"delivery_date"`
	Items        []HistoryItem `gorm:"serializer:json" json:"items"`
	Total        float64       `json:"total"`
	Status       string        `json:"status"` // delivered|invoiced|paid
	CreatedAt    time.Time     `json:"created_at"`
}
