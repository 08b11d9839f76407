package entities

import "time"

// Product categories as shown on the website and the chef order tabs.
const (
	CategoryShoot      = "shoot"
	CategoryMicrogreen = "microgreen"
	CategoryPetiteHerb = "petite_herb"
	CategoryMix        = "mix"
)

const (
	AvailabilityAvailable = "available"
	AvailabilitySeasonal  = "seasonal"
	AvailabilityPaused    = "paused"
	AvailabilityHidden    = "hidden"
)

// Growing stage phases in chronological order. Soaking happens before
// seeding, so it is excluded from grow-day totals.
const (
	StageSoaking     = "soaking"
	StageGermination = "germination"
	StageBlackout    = "blackout"
	StageLight       = "light"
)

const (
	UnitHours = "hours"
	UnitDays  = "days"
)

// MaxFeaturedProducts caps how many products the homepage surfaces.
const MaxFeaturedProducts = 6

type GrowingStage struct {
	Stage    string  `json:"stage"`    // soaking|germination|blackout|light
	Duration float64 `json:"duration"` // always positive
	Unit     string  `json:"unit"`     // hours|days
}

type ProductFacts struct {
	HarvestWindowDays string `json:"harvest_window_days"` // e.g. "10-14"
	ShelfLifeDays     int    `json:"shelf_life_days"`
	GrownMedium       string `json:"grown_medium"` // soil|hemp|water
	Notes             string `json:"notes_optional"`
}

type Product struct {
	ProductID          uint           `gorm:"primaryKey" json:"product_id"`
	Slug               string         `gorm:"uniqueIndex" json:"slug"`
	Name               string         `json:"name"`
	NameDE             string         `json:"name_de"`
	Category           string         `json:"category" gorm:"index"`            // shoot|microgreen|petite_herb|mix
	AvailabilityStatus string         `json:"availability_status" gorm:"index"` // available|seasonal|paused|hidden
	SortOrder          int            `json:"sort_order"`
	Facts              ProductFacts   `gorm:"serializer:json" json:"facts"`
	ServiceFit         string         `json:"service_fit"`
	ServiceFitDE       string         `json:"service_fit_de"`
	FlavorProfile      string         `json:"flavor_profile"`
	FlavorProfileDE    string         `json:"flavor_profile_de"`
	DescriptionChef    string         `json:"description_chef"`
	DescriptionChefDE  string         `json:"description_chef_de"`
	PhotoURL           string         `json:"photo_url"`
	PhotoFlip          string         `json:"photo_flip"` // none|horizontal
	Tags               []string       `gorm:"serializer:json" json:"tags"`
	FeaturedHomepage   bool           `json:"featured_homepage"`
	GrowingStages      []GrowingStage `gorm:"serializer:json" json:"growing_stages"`
	YieldPerTray       *float64       `json:"yield_per_tray"` // grams per tray
	AvailableSizes     []string       `gorm:"serializer:json" json:"available_sizes"`
	Prices             map[string]float64 `gorm:"serializer:json" json:"prices"` // size -> EUR

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicVisible reports whether the product appears on the website and in
// chef ordering. Paused and hidden products stay admin-only.
func (p *Product) PublicVisible() bool {
	return p.AvailabilityStatus == AvailabilityAvailable || p.AvailabilityStatus == AvailabilitySeasonal
}

// Localize swaps in the German fields when set. Untranslated fields keep
// their English value.
func (p Product) Localize(lang string) Product {
	if lang != "de" {
		return p
	}
	if p.NameDE != "" {
		p.Name = p.NameDE
	}
	if p.ServiceFitDE != "" {
		p.ServiceFit = p.ServiceFitDE
	}
	if p.FlavorProfileDE != "" {
		p.FlavorProfile = p.FlavorProfileDE
	}
	if p.DescriptionChefDE != "" {
		p.DescriptionChef = p.DescriptionChefDE
	}
	return p
}
