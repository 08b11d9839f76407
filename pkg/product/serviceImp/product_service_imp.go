package serviceImp

import (
	"regexp"
	"slices"
	"strings"

	"belarro/entities"
	"belarro/pkg/product/repository"
	"belarro/pkg/product/service"
)

type productSvc struct{ r repository.ProductRepository }

func New(r repository.ProductRepository) service.ProductService { return &productSvc{r} }

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return slugStrip.ReplaceAllString(s, "")
}

func (s *productSvc) checkFeatured(p *entities.Product) error {
	if !p.FeaturedHomepage {
		return nil
	}
	n, err := s.r.CountFeatured(p.ProductID)
	if err != nil {
		return err
	}
	if n >= entities.MaxFeaturedProducts {
		return service.ErrFeaturedLimit
	}
	return nil
}

func (s *productSvc) Create(p *entities.Product) (*entities.Product, error) {
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	if p.AvailabilityStatus == "" {
		p.AvailabilityStatus = entities.AvailabilityAvailable
	}
	if err := s.checkFeatured(p); err != nil {
		return nil, err
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productSvc) Update(p *entities.Product) (*entities.Product, error) {
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	if err := s.checkFeatured(p); err != nil {
		return nil, err
	}
	if err := s.r.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productSvc) Delete(id uint) error { return s.r.Delete(id) }

func (s *productSvc) Get(id uint) (*entities.Product, error) { return s.r.FindByID(id) }

func (s *productSvc) GetBySlug(slug string) (*entities.Product, error) {
	return s.r.FindBySlug(slug)
}

func (s *productSvc) ListAdmin() ([]entities.Product, error) { return s.r.List() }

func (s *productSvc) ListPublic(lang, category, tag string) ([]entities.Product, error) {
	all, err := s.r.List()
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if !p.PublicVisible() {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if tag != "" && !slices.Contains(p.Tags, tag) {
			continue
		}
		out = append(out, p.Localize(lang))
	}
	return out, nil
}

func (s *productSvc) Featured(lang string) ([]entities.Product, error) {
	all, err := s.r.List()
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, entities.MaxFeaturedProducts)
	for _, p := range all {
		if !p.FeaturedHomepage || !p.PublicVisible() {
			continue
		}
		out = append(out, p.Localize(lang))
		if len(out) == entities.MaxFeaturedProducts {
			break
		}
	}
	return out, nil
}

func (s *productSvc) Tags() ([]string, error) {
	all, err := s.r.List()
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var tags []string
	for _, p := range all {
		for _, t := range p.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags, nil
}
