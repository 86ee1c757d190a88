// Package category contains the pure business logic for label categories:
// the built-in catalog, descriptor validation and prefix resolution.
// This is part of the Functional Core - no I/O, only pure functions.
package category

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/yms/internal/core/label"
	"github.com/example/yms/internal/core/labelerr"
	"github.com/example/yms/internal/core/suffix"
)

// DefaultDigitWidth is the suffix width used when a category does not set one.
const DefaultDigitWidth = 4

// Category describes a class of physical unit and how its labels are numbered.
type Category struct {
	Name          string
	Prefix        string // Configured prefix; empty for user-set prefixes
	DigitWidth    int
	Policy        label.Policy
	PrefixMutable bool // Caller supplies the prefix on every request
	Description   string
}

// Defaults returns the built-in categories in display order.
func Defaults() []Category {
	return []Category{
		{Name: "Crates", Prefix: "Stackbox", DigitWidth: DefaultDigitWidth, Policy: label.PolicyPadded, Description: "Standard crates with sequential barcoded labels"},
		{Name: "Cartons", Prefix: "SBX", DigitWidth: DefaultDigitWidth, Policy: label.PolicyPadded, Description: "Shipping cartons with sequential barcoded labels"},
		{Name: "Pallets", Prefix: "SBPallet", DigitWidth: DefaultDigitWidth, Policy: label.PolicyPadded, Description: "Palletized goods with sequential barcoded labels"},
		{Name: "Custom", DigitWidth: DefaultDigitWidth, Policy: label.PolicyPadded, PrefixMutable: true, Description: "Custom labels with your own prefix"},
		{Name: "LR", DigitWidth: DefaultDigitWidth, Policy: label.PolicySimple, PrefixMutable: true, Description: "Cases numbered under a lorry receipt number"},
	}
}

// Validate rejects descriptors that can never produce labels.
func Validate(c Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: category name is required", labelerr.ErrInvalidConfiguration)
	}
	if err := suffix.ValidateWidth(c.DigitWidth); err != nil {
		return fmt.Errorf("category %s: %w", c.Name, err)
	}
	if _, err := label.ParsePolicy(string(c.Policy)); err != nil {
		return fmt.Errorf("category %s: %w", c.Name, err)
	}
	if !c.PrefixMutable && c.Prefix == "" {
		return fmt.Errorf("%w: category %s has a fixed prefix but none is configured", labelerr.ErrInvalidConfiguration, c.Name)
	}
	return nil
}

// ResolvePrefix returns the prefix a request must use.
// Rule: fixed-prefix categories only accept their configured prefix (or none).
// Rule: user-set prefixes must not be blank.
func ResolvePrefix(c Category, requested string) (string, error) {
	if c.PrefixMutable {
		if strings.TrimSpace(requested) == "" {
			return "", fmt.Errorf("%w: category %s requires a prefix", labelerr.ErrInvalidRequest, c.Name)
		}
		return requested, nil
	}
	if requested != "" && requested != c.Prefix {
		return "", fmt.Errorf("%w: category %s uses the fixed prefix %q, got %q", labelerr.ErrInvalidRequest, c.Name, c.Prefix, requested)
	}
	return c.Prefix, nil
}

// Catalog is an ordered, case-insensitive set of validated categories.
type Catalog struct {
	order  []string
	byName map[string]Category
}

// NewCatalog validates each category and rejects duplicate names.
func NewCatalog(categories ...Category) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Category, len(categories))}
	for _, cat := range categories {
		if err := Validate(cat); err != nil {
			return nil, err
		}
		key := strings.ToLower(cat.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %s", labelerr.ErrInvalidConfiguration, cat.Name)
		}
		c.order = append(c.order, key)
		c.byName[key] = cat
	}
	return c, nil
}

// Lookup finds a category by name, ignoring case.
func (c *Catalog) Lookup(name string) (Category, bool) {
	cat, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return cat, ok
}

// All returns the categories in catalog order.
func (c *Catalog) All() []Category {
	out := make([]Category, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byName[key])
	}
	return out
}

// Names returns the canonical category names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byName[key].Name)
	}
	return out
}

// Merge overlays categories onto base by name. Overrides replace a base entry
// in place; new names are appended in sorted order.
func Merge(base []Category, overrides map[string]Category) []Category {
	out := make([]Category, 0, len(base)+len(overrides))
	used := make(map[string]bool, len(overrides))
	for _, cat := range base {
		for name, o := range overrides {
			if strings.EqualFold(name, cat.Name) {
				cat = o
				used[name] = true
				break
			}
		}
		out = append(out, cat)
	}

	var extra []string
	for name := range overrides {
		if !used[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, overrides[name])
	}
	return out
}
