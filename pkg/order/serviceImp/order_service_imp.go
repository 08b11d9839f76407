package serviceImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"belarro/entities"
	"belarro/pkg/cart"
	"belarro/pkg/grow"
	orderrepo "belarro/pkg/order/repository"
	"belarro/pkg/order/service"
	productrepo "belarro/pkg/product/repository"
)

type orderSvc struct {
	orders   orderrepo.OrderRepository
	products productrepo.ProductRepository
}

func New(orders orderrepo.OrderRepository, products productrepo.ProductRepository) service.OrderService {
	return &orderSvc{orders: orders, products: products}
}

// load returns the kitchen's standing order, or an empty unsaved one when
// none exists yet.
func (s *orderSvc) load(kitchenID uint) (*entities.StandingOrder, error) {
	o, err := s.orders.FindByKitchen(kitchenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entities.StandingOrder{KitchenID: kitchenID}, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderSvc) summarize(items []entities.OrderItem, today time.Time) (*service.Summary, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	sum := &service.Summary{
		Lines:        make([]service.Line, 0, len(items)),
		ProductCount: len(items),
		ItemCount:    cart.TotalItemCount(items),
		Total:        cart.OrderTotal(items, products),
		NextDelivery: grow.NextDeliveryDate(today),
	}
	for _, item := range items {
		line := service.Line{ProductID: item.ProductID, Size: item.Size, Quantity: item.Quantity}
		for i := range products {
			if products[i].ProductID == item.ProductID {
				line.Name = products[i].Name
				line.UnitPrice = cart.UnitPrice(&products[i], item.Size)
				break
			}
		}
		line.LineTotal = line.UnitPrice * float64(line.Quantity)
		sum.Lines = append(sum.Lines, line)
	}
	return sum, nil
}

func (s *orderSvc) Get(kitchenID uint, today time.Time) (*entities.StandingOrder, *service.Summary, error) {
	o, err := s.load(kitchenID)
	if err != nil {
		return nil, nil, err
	}
	sum, err := s.summarize(o.Items, today)
	if err != nil {
		return nil, nil, err
	}
	return o, sum, nil
}

func (s *orderSvc) Put(kitchenID uint, items []entities.OrderItem, today time.Time) (*entities.StandingOrder, *service.Summary, error) {
	products, err := s.products.List()
	if err != nil {
		return nil, nil, err
	}
	// Rebuild through the cart transforms so zero-quantity lines drop and
	// missing sizes pick up the product default.
	var clean []entities.OrderItem
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		clean = cart.SetQuantity(clean, products, item.ProductID, item.Quantity)
		if item.Size != "" {
			clean = cart.SetSize(clean, item.ProductID, item.Size)
		}
	}
	return s.save(kitchenID, clean, today)
}

func (s *orderSvc) PatchItems(kitchenID uint, patches []service.ItemPatch, today time.Time) (*entities.StandingOrder, *service.Summary, error) {
	o, err := s.load(kitchenID)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.products.List()
	if err != nil {
		return nil, nil, err
	}
	items := o.Items
	for _, p := range patches {
		if p.Size != nil {
			items = cart.SetSize(items, p.ProductID, *p.Size)
		}
		if p.Quantity != nil {
			items = cart.SetQuantity(items, products, p.ProductID, *p.Quantity)
		}
	}
	return s.save(kitchenID, items, today)
}

func (s *orderSvc) save(kitchenID uint, items []entities.OrderItem, today time.Time) (*entities.StandingOrder, *service.Summary, error) {
	o, err := s.load(kitchenID)
	if err != nil {
		return nil, nil, err
	}
	o.Items = items
	if err := s.orders.Save(o); err != nil {
		return nil, nil, err
	}
	sum, err := s.summarize(o.Items, today)
	if err != nil {
		return nil, nil, err
	}
	return o, sum, nil
}

func (s *orderSvc) Clear(kitchenID uint) error {
	return s.orders.DeleteByKitchen(kitchenID)
}

func (s *orderSvc) Tracking(kitchenID uint, today time.Time) ([]service.ItemTracking, error) {
	o, err := s.load(kitchenID)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*entities.Product, len(products))
	for i := range products {
		byID[products[i].ProductID] = &products[i]
	}
	out := make([]service.ItemTracking, 0, len(o.Items))
	for _, item := range o.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			// product deleted since the order was saved; skip, don't error
			continue
		}
		t := service.ItemTracking{
			ProductID: item.ProductID, Name: p.Name, Size: item.Size, Quantity: item.Quantity,
		}
		if st, ok := grow.CurrentStage(p.GrowingStages, today); ok {
			t.Stage = &st
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *orderSvc) History(kitchenID uint) ([]entities.OrderRecord, error) {
	return s.orders.History(kitchenID)
}

// RecordDelivery snapshots the current standing order into the kitchen's
// history for the upcoming delivery date. Product names are copied so the
// record survives later catalog edits.
func (s *orderSvc) RecordDelivery(kitchenID uint, today time.Time) (*entities.OrderRecord, error) {
	o, err := s.load(kitchenID)
	if err != nil {
		return nil, err
	}
	if len(o.Items) == 0 {
		return nil, errors.New("standing order is empty")
	}
	products, err := s.products.List()
	if err != nil {
		return nil, err
	}
	rec := &entities.OrderRecord{
		KitchenID:    kitchenID,
		DeliveryDate: grow.NextDeliveryDate(today),
		Total:        cart.OrderTotal(o.Items, products),
		Status:       entities.OrderDelivered,
	}
	for _, item := range o.Items {
		hi := entities.HistoryItem{ProductID: item.ProductID, Size: item.Size, Quantity: item.Quantity}
		for i := range products {
			if products[i].ProductID == item.ProductID {
				hi.ProductName = products[i].Name
				break
			}
		}
		rec.Items = append(rec.Items, hi)
	}
	if err := s.orders.CreateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
