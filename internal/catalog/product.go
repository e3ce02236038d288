package catalog

import "math"

// CategoryAll is the pseudo-category meaning "no category filter". It is
// always the first entry of Categories().
const CategoryAll = "All"

var categories = []string{CategoryAll, "Electronics", "Fashion", "Home", "Gaming"}

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      int     `json:"discount"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Stock         int     `json:"stock"`
	Featured      bool    `json:"featured"`
	Image         string  `json:"image"`
}

// Catalog is the fixed product collection. It is loaded once at startup and
// never written afterwards; every method returns copies or projections.
type Catalog struct {
	products []Product
}

func New(products []Product) *Catalog {
	out := make([]Product, len(products))
	copy(out, products)
	return &Catalog{products: out}
}

// NewSeeded builds the catalog from the built-in demo product set.
func NewSeeded() *Catalog { return New(seedProducts) }

func (c *Catalog) Len() int { return len(c.products) }

func (c *Catalog) Get(id int) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryCounts reports how many products each category holds, including
// the "All" pseudo-category.
func (c *Catalog) CategoryCounts() []CategoryCount {
	out := make([]CategoryCount, 0, len(categories))
	for _, name := range categories {
		out = append(out, CategoryCount{Name: name, Count: len(c.byCategory(name))})
	}
	return out
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceRangeForCategory derives the price bounds over the category-filtered
// set, floored and ceiled to whole units. Changing category resets the
// caller's active bounds to this range. An empty category yields {0, 0}.
func (c *Catalog) PriceRangeForCategory(category string) PriceRange {
	return priceRange(c.byCategory(category))
}

// Featured returns up to limit featured products in catalog order. The home
// page shows the first eight.
func (c *Catalog) Featured(limit int) []Product {
	out := make([]Product, 0, limit)
	for _, p := range c.products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (c *Catalog) byCategory(category string) []Product {
	if category == CategoryAll || category == "" {
		return c.products
	}
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func priceRange(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}
	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return PriceRange{Min: math.Floor(min), Max: math.Ceil(max)}
}
