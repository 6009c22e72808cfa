package catalog

import (
	"sort"
	"strings"

	"github.com/yourusername/cookstore/pkg/money"
)

// maxRecommendations caps the number of same-category siblings returned
// for a product detail page.
const maxRecommendations = 4

// Service answers read-only queries over a static product catalog.
// The product list is scanned linearly; at catalog scale an index buys
// nothing, but lookups by id go through a map.
type Service struct {
	products []Product
	reviews  []Review
	byID     map[string]int
}

// New builds a Service from catalog data. Products keep their catalog
// order; a duplicate product id keeps the first occurrence.
func New(data Data) *Service {
	s := &Service{
		products: data.Products,
		reviews:  data.Reviews,
		byID:     make(map[string]int, len(data.Products)),
	}
	for i, p := range data.Products {
		if _, exists := s.byID[p.ID]; !exists {
			s.byID[p.ID] = i
		}
	}
	return s
}

// All returns every product in catalog order.
func (s *Service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByCategory returns the products in the given category, preserving
// catalog order. An unknown category yields an empty slice.
func (s *Service) ByCategory(c Category) []Product {
	out := []Product{}
	for _, p := range s.products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the products flagged as featured, in catalog order.
func (s *Service) Featured() []Product {
	out := []Product{}
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the product with the given id. The match is exact and
// case-sensitive; absence is a false second result, never an error.
func (s *Service) Get(id string) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Reviews returns the reviews for the given product id in catalog order,
// empty if there are none.
func (s *Service) Reviews(productID string) []Review {
	out := []Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// Search returns the products whose name, description or any tag contains
// the query, case-insensitively. There is no tokenization or ranking;
// matches come back in catalog order. An empty query matches nothing.
func (s *Service) Search(query string) []Product {
	out := []Product{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			tagsContain(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

func tagsContain(tags []string, q string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// Recommended returns up to four products sharing the given product's
// category, excluding the product itself, in catalog order. An unknown id
// yields an empty slice.
func (s *Service) Recommended(productID string) []Product {
	current, ok := s.Get(productID)
	if !ok {
		return []Product{}
	}
	out := []Product{}
	for _, p := range s.products {
		if p.ID == productID || p.Category != current.Category {
			continue
		}
		out = append(out, p)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// SortKey selects a product ordering for listing pages.
type SortKey string

const (
	SortByName      SortKey = "name"       // name ascending, A-Z
	SortByPriceLow  SortKey = "price-low"  // price ascending
	SortByPriceHigh SortKey = "price-high" // price descending
	SortByRating    SortKey = "rating"     // rating descending
)

// Sort returns a copy of products ordered by key. The sort is stable, so
// equal keys keep their incoming (catalog) order. An unknown key sorts
// by name.
func Sort(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	switch key {
	case SortByPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortByPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}

// FilterOptions narrows a product listing. Zero values leave the
// corresponding dimension unfiltered.
type FilterOptions struct {
	Categories  []Category
	MinPrice    money.Cents
	MaxPrice    money.Cents
	Materials   []string
	Brands      []string
	InStockOnly bool
}

// Filter returns the products matching every set option, preserving the
// incoming order.
func Filter(products []Product, opts FilterOptions) []Product {
	out := []Product{}
	for _, p := range products {
		if len(opts.Categories) > 0 && !categoryIn(p.Category, opts.Categories) {
			continue
		}
		if opts.MinPrice > 0 && p.Price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && p.Price > opts.MaxPrice {
			continue
		}
		if len(opts.Materials) > 0 && !anyFold(p.Materials, opts.Materials) {
			continue
		}
		if len(opts.Brands) > 0 && !containsFold(opts.Brands, p.Brand) {
			continue
		}
		if opts.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

func categoryIn(c Category, set []Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

func anyFold(values, set []string) bool {
	for _, v := range values {
		if containsFold(set, v) {
			return true
		}
	}
	return false
}
