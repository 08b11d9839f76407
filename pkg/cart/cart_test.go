package cart

import (
	"reflect"
	"testing"

	"belarro/entities"
)

var catalog = []entities.Product{
	{
		ProductID:      1,
		Name:           "Pea Shoots",
		AvailableSizes: []string{"small", "large"},
		Prices:         map[string]float64{"small": 2.50, "large": 4.00},
	},
	{
		ProductID:      2,
		Name:           "Nasturtium",
		AvailableSizes: []string{"container"},
		Prices:         map[string]float64{"container": 6.00},
	},
	{
		ProductID: 3,
		Name:      "Unpriced", // no price table yet
	},
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []entities.OrderItem
		want  float64
	}{
		{"empty order", nil, 0},
		{
			"single line",
			[]entities.OrderItem{{ProductID: 1, Size: "small", Quantity: 3}},
			7.50,
		},
		{
			"mixed lines",
			[]entities.OrderItem{
				{ProductID: 1, Size: "large", Quantity: 2},
				{ProductID: 2, Size: "container", Quantity: 1},
			},
			14.00,
		},
		{
			"missing product contributes zero",
			[]entities.OrderItem{{ProductID: 99, Size: "small", Quantity: 5}},
			0,
		},
		{
			"product without prices contributes zero",
			[]entities.OrderItem{{ProductID: 3, Size: "small", Quantity: 2}},
			0,
		},
		{
			"unpriced size contributes zero",
			[]entities.OrderItem{{ProductID: 2, Size: "small", Quantity: 4}},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderTotal(tt.items, catalog); got != tt.want {
				t.Errorf("OrderTotal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderTotalEmptyCatalog(t *testing.T) {
	items := []entities.OrderItem{{ProductID: 1, Size: "small", Quantity: 3}}
	if got := OrderTotal(items, nil); got != 0 {
		t.Errorf("OrderTotal with empty catalog = %v, want 0", got)
	}
}

func TestTotalItemCount(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Size: "small", Quantity: 3},
		{ProductID: 2, Size: "container", Quantity: 2},
	}
	if got := TotalItemCount(items); got != 5 {
		t.Errorf("TotalItemCount = %d, want 5", got)
	}
	if got := TotalItemCount(nil); got != 0 {
		t.Errorf("TotalItemCount(nil) = %d, want 0", got)
	}
}

func TestSetQuantityInsertsWithDefaultSize(t *testing.T) {
	got := SetQuantity(nil, catalog, 1, 2)
	want := []entities.OrderItem{{ProductID: 1, Size: "small", Quantity: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetQuantity = %+v, want %+v", got, want)
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Size: "small", Quantity: 2},
		{ProductID: 2, Size: "container", Quantity: 1},
	}
	got := SetQuantity(items, catalog, 1, 0)
	want := []entities.OrderItem{{ProductID: 2, Size: "container", Quantity: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetQuantity(0) = %+v, want %+v", got, want)
	}

	if got := SetQuantity(items, catalog, 2, -3); len(got) != 1 || got[0].ProductID != 1 {
		t.Errorf("negative quantity should remove the line, got %+v", got)
	}
}

func TestSetQuantityZeroForAbsentProductIsNoop(t *testing.T) {
	items := []entities.OrderItem{{ProductID: 1, Size: "small", Quantity: 2}}
	got := SetQuantity(items, catalog, 99, 0)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("expected equivalent collection, got %+v", got)
	}
}

func TestSetQuantityIdempotentNoop(t *testing.T) {
	items := []entities.OrderItem{{ProductID: 1, Size: "large", Quantity: 4}}
	got := SetQuantity(items, catalog, 1, 4)
	if !reflect.DeepEqual(got, items) {
		t.Errorf("no-op update should return an equivalent collection, got %+v", got)
	}
}

func TestSetQuantityPreservesSize(t *testing.T) {
	items := []entities.OrderItem{{ProductID: 1, Size: "large", Quantity: 1}}
	got := SetQuantity(items, catalog, 1, 5)
	want := []entities.OrderItem{{ProductID: 1, Size: "large", Quantity: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetQuantity = %+v, want %+v", got, want)
	}
}

func TestSetSize(t *testing.T) {
	items := []entities.OrderItem{{ProductID: 1, Size: "small", Quantity: 3}}

	got := SetSize(items, 1, "large")
	want := []entities.OrderItem{{ProductID: 1, Size: "large", Quantity: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SetSize existing = %+v, want %+v", got, want)
	}

	// New product enters with quantity 1.
	got = SetSize(items, 2, "container")
	if len(got) != 2 || got[1].Quantity != 1 || got[1].Size != "container" {
		t.Errorf("SetSize new product = %+v", got)
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Size: "small", Quantity: 2},
		{ProductID: 2, Size: "container", Quantity: 1},
	}
	snapshot := make([]entities.OrderItem, len(items))
	copy(snapshot, items)

	SetQuantity(items, catalog, 1, 9)
	SetQuantity(items, catalog, 2, 0)
	SetSize(items, 1, "large")
	Remove(items, 2)

	if !reflect.DeepEqual(items, snapshot) {
		t.Errorf("input collection was mutated: %+v", items)
	}
}

func TestRemove(t *testing.T) {
	items := []entities.OrderItem{
		{ProductID: 1, Size: "small", Quantity: 2},
		{ProductID: 2, Size: "container", Quantity: 1},
	}
	got := Remove(items, 1)
	if len(got) != 1 || got[0].ProductID != 2 {
		t.Errorf("Remove = %+v", got)
	}
}
