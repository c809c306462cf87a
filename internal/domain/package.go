package domain

// Package represents a purchasable lesson package
type Package struct {
	Key       string
	Label     string
	Price     string
	BadgeText string
}

// PackageOverride editable fields of a package in the admin pricing document
type PackageOverride struct {
	Label     *string
	Price     *string
	BadgeText *string
}

// Catalog ordered, immutable set of packages
type Catalog struct {
	keys  []string
	items map[string]Package
}

// NewCatalog builds a catalog preserving input order; later duplicates are ignored
func NewCatalog(packages []Package) Catalog {
	c := Catalog{
		keys:  make([]string, 0, len(packages)),
		items: make(map[string]Package, len(packages)),
	}
	for _, p := range packages {
		if _, dup := c.items[p.Key]; dup || p.Key == "" {
			continue
		}
		c.keys = append(c.keys, p.Key)
		c.items[p.Key] = p
	}
	return c
}

// Get returns the package for key
func (c Catalog) Get(key string) (Package, bool) {
	p, ok := c.items[key]
	return p, ok
}

// Has returns true for a known key
func (c Catalog) Has(key string) bool {
	_, ok := c.items[key]
	return ok
}

// Keys in catalog order
func (c Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All packages in catalog order
func (c Catalog) All() []Package {
	out := make([]Package, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}

// Len number of packages
func (c Catalog) Len() int {
	return len(c.keys)
}

// WithOverrides applies admin edits to known keys; unknown keys are ignored
func (c Catalog) WithOverrides(overrides map[string]PackageOverride) Catalog {
	packages := c.All()
	for i, p := range packages {
		o, ok := overrides[p.Key]
		if !ok {
			continue
		}
		if o.Label != nil {
			p.Label = *o.Label
		}
		if o.Price != nil {
			p.Price = *o.Price
		}
		if o.BadgeText != nil {
			p.BadgeText = *o.BadgeText
		}
		packages[i] = p
	}
	return NewCatalog(packages)
}
