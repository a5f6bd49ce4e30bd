package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrBrandNotFound is returned when a brand id does not exist in the dataset.
var ErrBrandNotFound = errors.New("catalog: brand not found")

// ValidationError lists every integrity problem found in a dataset.
type ValidationError struct {
	problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed: [%s]", strings.Join(e.problems, "; "))
}

// Problems returns a copy of the problem list.
func (e *ValidationError) Problems() []string {
	out := make([]string, len(e.problems))
	copy(out, e.problems)
	return out
}

// Catalog is the read-only brand collection loaded once at startup.
type Catalog struct {
	brands []Brand
	byID   map[string]int
}

type dataset struct {
	Brands []Brand `yaml:"brands"`
}

// Load reads a JSON or YAML dataset from path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a dataset document. JSON input is accepted since it is valid YAML.
func Parse(raw []byte) (*Catalog, error) {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return New(ds.Brands)
}

// New builds a catalog from already decoded brands after validating their integrity.
func New(brands []Brand) (*Catalog, error) {
	if err := validate(brands); err != nil {
		return nil, err
	}
	c := &Catalog{
		brands: make([]Brand, len(brands)),
		byID:   make(map[string]int, len(brands)),
	}
	copy(c.brands, brands)
	for i, b := range c.brands {
		c.byID[b.ID] = i
	}
	return c, nil
}

// Brands returns all brands in dataset order.
func (c *Catalog) Brands() []Brand {
	if c == nil {
		return nil
	}
	out := make([]Brand, len(c.brands))
	copy(out, c.brands)
	return out
}

// Len returns the number of brands.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.brands)
}

// Brand looks up a brand by id.
func (c *Catalog) Brand(id string) (Brand, error) {
	if c == nil {
		return Brand{}, ErrBrandNotFound
	}
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Brand{}, ErrBrandNotFound
	}
	return c.brands[i], nil
}

// RaffleBrands returns brands with an enabled raffle and an Instagram channel, in dataset order.
func (c *Catalog) RaffleBrands() []Brand {
	if c == nil {
		return nil
	}
	return lo.Filter(c.brands, func(b Brand, _ int) bool {
		return b.RaffleEnabled() && b.Contact.HasInstagram()
	})
}

// RaffleHandles returns the Instagram handles (without "@") of RaffleBrands.
func (c *Catalog) RaffleHandles() []string {
	return lo.Map(c.RaffleBrands(), func(b Brand, _ int) string {
		return b.Contact.Handle()
	})
}

func validate(brands []Brand) error {
	var problems []string
	seenBrand := make(map[string]struct{}, len(brands))
	for i, b := range brands {
		id := strings.TrimSpace(b.ID)
		if id == "" {
			problems = append(problems, fmt.Sprintf("brands[%d]: missing id", i))
			continue
		}
		if _, dup := seenBrand[id]; dup {
			problems = append(problems, fmt.Sprintf("brand %q: duplicate id", id))
		}
		seenBrand[id] = struct{}{}

		seenCat := make(map[string]struct{}, len(b.Menu.Categories))
		for _, cat := range b.Menu.Categories {
			if cat.ID == "" {
				problems = append(problems, fmt.Sprintf("brand %q: category without id", id))
				continue
			}
			if _, dup := seenCat[cat.ID]; dup {
				problems = append(problems, fmt.Sprintf("brand %q: duplicate category %q", id, cat.ID))
			}
			seenCat[cat.ID] = struct{}{}

			seenItem := make(map[string]struct{}, len(cat.Items))
			for _, it := range cat.Items {
				if it.ID == "" {
					problems = append(problems, fmt.Sprintf("brand %q category %q: item without id", id, cat.ID))
					continue
				}
				if _, dup := seenItem[it.ID]; dup {
					problems = append(problems, fmt.Sprintf("brand %q category %q: duplicate item %q", id, cat.ID, it.ID))
				}
				seenItem[it.ID] = struct{}{}
				if it.Price < 0 {
					problems = append(problems, fmt.Sprintf("brand %q item %q: negative price", id, it.ID))
				}
			}
		}
	}
	if len(problems) > 0 {
		return &ValidationError{problems: problems}
	}
	return nil
}
