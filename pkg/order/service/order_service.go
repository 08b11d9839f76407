package service

import (
	"time"

	"belarro/entities"
	"belarro/pkg/grow"
)

// Line is one priced row of an order summary.
type Line struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Summary carries the display totals for a standing order.
type Summary struct {
	Lines        []Line    `json:"lines"`
	ProductCount int       `json:"product_count"`
	ItemCount    int       `json:"item_count"`
	Total        float64   `json:"total"`
	NextDelivery time.Time `json:"next_delivery"`
}

// ItemPatch updates one line. Quantity <= 0 removes the line; a product not
// yet in the order is inserted per the cart defaulting rules.
type ItemPatch struct {
	ProductID uint    `json:"product_id"`
	Quantity  *int    `json:"quantity"`
	Size      *string `json:"size"`
}

// ItemTracking is the production-tracking view of one ordered crop. Stage is
// nil when the product has no growing-stage recipe configured.
type ItemTracking struct {
	ProductID uint              `json:"product_id"`
	Name      string            `json:"name"`
	Size      string            `json:"size"`
	Quantity  int               `json:"quantity"`
	Stage     *grow.StageStatus `json:"stage"`
}

type OrderService interface {
	Get(kitchenID uint, today time.Time) (*entities.StandingOrder, *Summary, error)
	Put(kitchenID uint, items []entities.OrderItem, today time.Time) (*entities.StandingOrder, *Summary, error)
	PatchItems(kitchenID uint, patches []ItemPatch, today time.Time) (*entities.StandingOrder, *Summary, error)
	Clear(kitchenID uint) error
	Tracking(kitchenID uint, today time.Time) ([]ItemTracking, error)
	History(kitchenID uint) ([]entities.OrderRecord, error)
	RecordDelivery(kitchenID uint, today time.Time) (*entities.OrderRecord, error)
}
