// Package cart computes display totals for a kitchen's standing order and
// provides the pure item-update transforms behind the order editors. A
// missing product, a missing price table, or an unpriced size contributes
// zero instead of failing; these are best-effort display sums, not a ledger.
package cart

import "belarro/entities"

func findProduct(products []entities.Product, id uint) *entities.Product {
	for i := range products {
		if products[i].ProductID == id {
			return &products[i]
		}
	}
	return nil
}

// UnitPrice looks up the price for a size, defaulting to zero.
func UnitPrice(p *entities.Product, size string) float64 {
	if p == nil || p.Prices == nil {
		return 0
	}
	return p.Prices[size]
}

// OrderTotal sums line contributions across the order.
func OrderTotal(items []entities.OrderItem, products []entities.Product) float64 {
	total := 0.0
	for _, item := range items {
		total += UnitPrice(findProduct(products, item.ProductID), item.Size) * float64(item.Quantity)
	}
	return total
}

// TotalItemCount sums quantities, not line count.
func TotalItemCount(items []entities.OrderItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// SetQuantity returns a new item collection with the product's quantity set.
// Zero or negative removes the line. A product not yet in the order is
// inserted with its first available size. The input slice is never mutated.
func SetQuantity(items []entities.OrderItem, products []entities.Product, productID uint, qty int) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items)+1)
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			if qty <= 0 {
				continue
			}
			item.Quantity = qty
		}
		out = append(out, item)
	}
	if !found && qty > 0 {
		size := ""
		if p := findProduct(products, productID); p != nil && len(p.AvailableSizes) > 0 {
			size = p.AvailableSizes[0]
		}
		out = append(out, entities.OrderItem{ProductID: productID, Size: size, Quantity: qty})
	}
	return out
}

// SetSize returns a new item collection with the product's size set,
// preserving its quantity. A product not yet in the order is inserted with
// quantity 1. The input slice is never mutated.
func SetSize(items []entities.OrderItem, productID uint, size string) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items)+1)
	found := false
	for _, item := range items {
		if item.ProductID == productID {
			found = true
			item.Size = size
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, entities.OrderItem{ProductID: productID, Size: size, Quantity: 1})
	}
	return out
}

// Remove drops the product's line entirely.
func Remove(items []entities.OrderItem, productID uint) []entities.OrderItem {
	out := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}
