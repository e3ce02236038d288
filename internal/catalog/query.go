package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by Query. An unrecognized key falls back to featured,
// the storefront's default ordering.
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNewest     = "newest"
)

type QuerySpec struct {
	SearchTerm string
	Category   string
	MinPrice   float64
	MaxPrice   float64
	SortKey    string
}

type PageSpec struct {
	Size   int
	Number int
}

type Result struct {
	Items        []Product  `json:"items"`
	TotalMatches int        `json:"totalMatches"`
	TotalPages   int        `json:"totalPages"`
	PriceRange   PriceRange `json:"priceRange"`
}

// Query filters, sorts and paginates the catalog. It is a pure function of
// its inputs: no writes, safe to call from any number of read paths.
//
// Inputs are taken as-is. Inverted price bounds or a page past the end
// produce an empty Items slice, never an error. PriceRange covers the
// category-filtered set regardless of search term or bounds, so the caller
// can reset its filter inputs whenever the category changes.
func (c *Catalog) Query(spec QuerySpec, page PageSpec) Result {
	pool := c.byCategory(spec.Category)

	matched := make([]Product, 0, len(pool))
	term := strings.ToLower(spec.SearchTerm)
	for _, p := range pool {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if p.Price < spec.MinPrice || p.Price > spec.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, spec.SortKey)

	return Result{
		Items:        pageSlice(matched, page),
		TotalMatches: len(matched),
		TotalPages:   totalPages(len(matched), page.Size),
		PriceRange:   priceRange(pool),
	}
}

// sortProducts orders in place. Stability matters: products with equal keys
// must keep their catalog order across refreshes and page boundaries.
func sortProducts(items []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortNewest:
		// Higher id = newer.
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Featured && !items[j].Featured })
	}
}

func pageSlice(items []Product, page PageSpec) []Product {
	start := (page.Number - 1) * page.Size
	if page.Size < 1 || start < 0 || start >= len(items) {
		return []Product{}
	}
	end := start + page.Size
	if end > len(items) {
		end = len(items)
	}
	out := make([]Product, end-start)
	copy(out, items[start:end])
	return out
}

func totalPages(matches, size int) int {
	if size < 1 {
		return 0
	}
	return (matches + size - 1) / size
}
