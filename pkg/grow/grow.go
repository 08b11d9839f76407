// Package grow holds the production-tracking math: how long a crop takes,
// when the next delivery runs, and which growing stage a tray is in today.
// Everything here is a pure function of its inputs; callers pass "today"
// explicitly.
package grow

import (
	"math"
	"time"

	"belarro/entities"
)

type Status string

const (
	StatusNotStarted Status = "Not started"
	StatusGrowing    Status = "Growing"
	StatusReady      Status = "Ready"
)

// StageStatus describes where a crop sits in its stage sequence.
// ActiveIndex is -1 before seeding, 0..len-1 while growing, and len(Stages)
// once every stage has elapsed.
type StageStatus struct {
	ActiveIndex int                     `json:"active_index"`
	Stages      []entities.GrowingStage `json:"stages"`
	Status      Status                  `json:"status"`
}

// durationDays converts a stage duration to calendar days.
func durationDays(gs entities.GrowingStage) float64 {
	if gs.Unit == entities.UnitHours {
		return gs.Duration / 24
	}
	return gs.Duration
}

// TotalGrowDays sums the stage durations that follow seeding. Soaking
// precedes seeding and is excluded.
func TotalGrowDays(stages []entities.GrowingStage) float64 {
	total := 0.0
	for _, gs := range stages {
		if gs.Stage == entities.StageSoaking {
			continue
		}
		total += durationDays(gs)
	}
	return total
}

// NextDeliveryDate returns the next Tuesday strictly after today, normalized
// to midnight in today's location. A Tuesday maps to the following Tuesday,
// never same-day.
func NextDeliveryDate(today time.Time) time.Time {
	daysUntil := (int(time.Tuesday) - int(today.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	d := today.AddDate(0, 0, daysUntil)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// SeedingDate is the day trays must be seeded to be ready on delivery.
//
// TODO: crops under 14 grow days are meant to seed on the Friday before
// delivery rather than the Tuesday cycle; both branches currently subtract
// the same offset, matching what production has always done.
func SeedingDate(delivery time.Time, totalGrowDays float64) time.Time {
	offset := int(math.Ceil(totalGrowDays))
	if totalGrowDays >= 14 {
		return delivery.AddDate(0, 0, -offset)
	}
	return delivery.AddDate(0, 0, -offset)
}

// StageSince walks the stage sequence for a crop seeded daysSinceSeeding
// days ago. The walk covers every stage, soaking included.
func StageSince(stages []entities.GrowingStage, daysSinceSeeding float64) StageStatus {
	if daysSinceSeeding < 0 {
		return StageStatus{ActiveIndex: -1, Stages: stages, Status: StatusNotStarted}
	}
	accumulated := 0.0
	for i, gs := range stages {
		accumulated += durationDays(gs)
		if daysSinceSeeding < accumulated {
			return StageStatus{ActiveIndex: i, Stages: stages, Status: StatusGrowing}
		}
	}
	return StageStatus{ActiveIndex: len(stages), Stages: stages, Status: StatusReady}
}

// CurrentStage reports which stage a crop is in today, assuming the weekly
// Tuesday delivery cadence. ok is false when no stage recipe is configured.
func CurrentStage(stages []entities.GrowingStage, today time.Time) (StageStatus, bool) {
	if len(stages) == 0 {
		return StageStatus{}, false
	}
	delivery := NextDeliveryDate(today)
	seeding := SeedingDate(delivery, TotalGrowDays(stages))
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	daysSinceSeeding := midnight.Sub(seeding).Hours() / 24
	return StageSince(stages, daysSinceSeeding), true
}
