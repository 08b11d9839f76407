// Package production builds the weekly seeding workbook the growers work
// from: every crop ordered by an active kitchen, total trays, and when it
// must go in the ground to make the next delivery.
package production

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"belarro/entities"
	"belarro/pkg/grow"
)

const sheetName = "Seeding Plan"

type row struct {
	product *entities.Product
	trays   int
}

// BuildWeeklySheet aggregates the standing orders of active kitchens into an
// xlsx workbook. Products nobody ordered are left out; ordered products that
// have been deleted from the catalog are skipped.
func BuildWeeklySheet(products []entities.Product, kitchens []entities.Kitchen, orders []entities.StandingOrder, today time.Time) (*excelize.File, error) {
	active := map[uint]bool{}
	for _, k := range kitchens {
		if k.Status == entities.KitchenActive {
			active[k.KitchenID] = true
		}
	}
	trays := map[uint]int{}
	for _, o := range orders {
		if !active[o.KitchenID] {
			continue
		}
		for _, item := range o.Items {
			trays[item.ProductID] += item.Quantity
		}
	}
	var rows []row
	for i := range products {
		if n := trays[products[i].ProductID]; n > 0 {
			rows = append(rows, row{product: &products[i], trays: n})
		}
	}

	delivery := grow.NextDeliveryDate(today)

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)
	headers := []string{"Product", "Trays", "Grow Days", "Seed By", "Delivery", "Current Stage"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, hd); err != nil {
			return nil, err
		}
	}
	for i, r := range rows {
		totalDays := grow.TotalGrowDays(r.product.GrowingStages)
		seedBy := grow.SeedingDate(delivery, totalDays)
		status := "not configured"
		if st, ok := grow.CurrentStage(r.product.GrowingStages, today); ok {
			status = string(st.Status)
		}
		values := []any{
			r.product.Name,
			r.trays,
			totalDays,
			seedBy.Format("2006-01-02"),
			delivery.Format("2006-01-02"),
			status,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Filename returns the download name for the sheet of a given delivery week.
func Filename(today time.Time) string {
	return fmt.Sprintf("seeding-plan-%s.xlsx", grow.NextDeliveryDate(today).Format("2006-01-02"))
}
