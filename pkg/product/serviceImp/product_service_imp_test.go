package serviceImp

import (
	"errors"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"belarro/database"
	"belarro/entities"
	"belarro/pkg/product/repositoryImp"
	"belarro/pkg/product/service"
)

func newSvc(t *testing.T) service.ProductService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(repositoryImp.New(db))
}

func TestSlugify(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Pea Shoots", "pea-shoots"},
		{"  Red  Garnet Amaranth ", "red-garnet-amaranth"},
		{"Chef's Mix #2", "chefs-mix-2"},
	}
	for _, tt := range tests {
		if got := slugify(tt.name); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCreateDefaultsSlugAndAvailability(t *testing.T) {
	svc := newSvc(t)
	p, err := svc.Create(&entities.Product{Name: "Pea Shoots"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Slug != "pea-shoots" {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.AvailabilityStatus != entities.AvailabilityAvailable {
		t.Errorf("availability = %q", p.AvailabilityStatus)
	}
}

func TestFeaturedLimit(t *testing.T) {
	svc := newSvc(t)
	names := []string{"Pea", "Radish", "Sunflower", "Amaranth", "Basil", "Nasturtium"}
	for _, n := range names {
		if _, err := svc.Create(&entities.Product{Name: n, FeaturedHomepage: true}); err != nil {
			t.Fatalf("Create(%s): %v", n, err)
		}
	}

	_, err := svc.Create(&entities.Product{Name: "Mustard", FeaturedHomepage: true})
	if !errors.Is(err, service.ErrFeaturedLimit) {
		t.Fatalf("7th featured create: got %v, want ErrFeaturedLimit", err)
	}

	// non-featured creation is unaffected
	if _, err := svc.Create(&entities.Product{Name: "Mustard"}); err != nil {
		t.Fatalf("non-featured create: %v", err)
	}

	// updating an already-featured product must not count itself
	first, err := svc.GetBySlug("pea")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	first.SortOrder = 5
	if _, err := svc.Update(first); err != nil {
		t.Fatalf("update featured product in place: %v", err)
	}

	// flipping the extra product on must still fail
	extra, err := svc.GetBySlug("mustard")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	extra.FeaturedHomepage = true
	if _, err := svc.Update(extra); !errors.Is(err, service.ErrFeaturedLimit) {
		t.Fatalf("feature 7th via update: got %v, want ErrFeaturedLimit", err)
	}
}

func TestListPublicFiltersAndLocalizes(t *testing.T) {
	svc := newSvc(t)
	seed := []entities.Product{
		{Name: "Pea Shoots", NameDE: "Erbsensprossen", Category: entities.CategoryShoot,
			AvailabilityStatus: entities.AvailabilityAvailable, Tags: []string{"sweet"}},
		{Name: "Radish", Category: entities.CategoryMicrogreen,
			AvailabilityStatus: entities.AvailabilitySeasonal, Tags: []string{"spicy"}},
		{Name: "Hidden Mix", Category: entities.CategoryMix,
			AvailabilityStatus: entities.AvailabilityHidden},
		{Name: "Paused Herb", Category: entities.CategoryPetiteHerb,
			AvailabilityStatus: entities.AvailabilityPaused},
	}
	for i := range seed {
		if _, err := svc.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := svc.ListPublic("", "", "")
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("public products = %d, want 2 (hidden and paused excluded)", len(all))
	}

	shoots, err := svc.ListPublic("de", entities.CategoryShoot, "")
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(shoots) != 1 || shoots[0].Name != "Erbsensprossen" {
		t.Fatalf("de shoot list = %+v", shoots)
	}

	spicy, err := svc.ListPublic("", "", "spicy")
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(spicy) != 1 || spicy[0].Name != "Radish" {
		t.Fatalf("tag filter = %+v", spicy)
	}
}

func TestTagsUniqueSorted(t *testing.T) {
	svc := newSvc(t)
	seed := []entities.Product{
		{Name: "A", Tags: []string{"sweet", "crunchy"}},
		{Name: "B", Tags: []string{"spicy", "sweet"}},
	}
	for i := range seed {
		if _, err := svc.Create(&seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	tags, err := svc.Tags()
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	want := []string{"crunchy", "spicy", "sweet"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("tags = %v, want %v", tags, want)
		}
	}
}
