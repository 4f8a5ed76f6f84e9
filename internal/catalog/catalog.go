package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TemirB/rsrvd-site/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CategoryAll disables the product category filter.
const CategoryAll = "all"

// Categories in the order the shop shows its tabs.
var Categories = []string{CategoryAll, "branding", "clothing", "accessories", "promotional"}

// PortfolioCategories are the portfolio filter tabs.
var PortfolioCategories = []string{"All", "Branding", "Web Design", "Print", "Social Media", "Photography"}

type data struct {
	Services  []domain.Service `yaml:"services"`
	Packages  []domain.Package `yaml:"packages"`
	Products  []domain.Product `yaml:"products"`
	Portfolio []domain.Project `yaml:"portfolio"`
}

// Catalog is the static offer of the agency. Product reads sleep for a
// configured latency to behave like a remote API.
type Catalog struct {
	data         data
	listLatency  time.Duration
	itemLatency  time.Duration
	serviceIndex map[string]domain.Service
}

type Option func(*Catalog)

func WithLatency(list, item time.Duration) Option {
	return func(c *Catalog) {
		c.listLatency = list
		c.itemLatency = item
	}
}

func New(opts ...Option) (*Catalog, error) {
	return parse(catalogYAML, opts...)
}

func parse(raw []byte, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		listLatency: 800 * time.Millisecond,
		itemLatency: 300 * time.Millisecond,
	}
	if err := yaml.Unmarshal(raw, &c.data); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c.serviceIndex = make(map[string]domain.Service, len(c.data.Services)+len(c.data.Packages))
	for _, s := range c.data.Services {
		c.serviceIndex[s.ID] = s
	}
	for _, p := range c.data.Packages {
		if _, dup := c.serviceIndex[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", p.ID)
		}
		c.serviceIndex[p.ID] = p.AsService()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Catalog) Services() []domain.Service {
	return append([]domain.Service(nil), c.data.Services...)
}

func (c *Catalog) Packages() []domain.Package {
	return append([]domain.Package(nil), c.data.Packages...)
}

// Portfolio lists case studies of one category, case-insensitively. "all"
// and "" mean every category. featured keeps only highlighted projects.
func (c *Catalog) Portfolio(category string, featured bool) []domain.Project {
	out := make([]domain.Project, 0, len(c.data.Portfolio))
	for _, p := range c.data.Portfolio {
		if featured && !p.Featured {
			continue
		}
		if category == "" || strings.EqualFold(category, CategoryAll) || strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Products lists shop products of one category, or all of them for
// CategoryAll and "".
func (c *Catalog) Products(ctx context.Context, category string) ([]domain.Product, error) {
	if err := wait(ctx, c.listLatency); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(c.data.Products))
	for _, p := range c.data.Products {
		if category == "" || category == CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) Product(ctx context.Context, id string) (domain.Product, error) {
	if err := wait(ctx, c.itemLatency); err != nil {
		return domain.Product{}, err
	}
	for _, p := range c.data.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
}

// Service resolves anything that can go into the cart: a service, a package
// or a shop product.
func (c *Catalog) Service(ctx context.Context, id string) (domain.Service, error) {
	if s, ok := c.serviceIndex[id]; ok {
		return s, nil
	}
	p, err := c.Product(ctx, id)
	if err != nil {
		return domain.Service{}, err
	}
	return p.AsService(), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
