// Package catalog holds the static product catalog and answers lookup,
// filter, search and recommendation queries over it. All operations are
// pure reads; the catalog never changes after initialization.
package catalog

import (
	"github.com/yourusername/cookstore/pkg/money"
)

// Category is the fixed product category enumeration.
type Category string

const (
	CategoryCookwareSets Category = "cookware-sets"
	CategoryFryingPans   Category = "frying-pans"
	CategorySaucePans    Category = "sauce-pans"
	CategoryDutchOvens   Category = "dutch-ovens"
	CategoryAccessories  Category = "accessories"
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCookwareSets,
		CategoryFryingPans,
		CategorySaucePans,
		CategoryDutchOvens,
		CategoryAccessories,
	}
}

// categoryLabels maps category values to human-readable labels.
var categoryLabels = map[Category]string{
	CategoryCookwareSets: "Cookware Sets",
	CategoryFryingPans:   "Frying Pans",
	CategorySaucePans:    "Sauce Pans",
	CategoryDutchOvens:   "Dutch Ovens",
	CategoryAccessories:  "Accessories",
}

// Label returns the display label for the category, or "Products" for an
// unknown value.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "Products"
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Specification is a single named entry in a product's spec sheet.
// Order within the list is significant for display.
type Specification struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Dimensions describes a product's physical measurements.
// All fields are free-form display strings and optional.
type Dimensions struct {
	Diameter string `json:"diameter,omitempty" yaml:"diameter,omitempty"`
	Height   string `json:"height,omitempty" yaml:"height,omitempty"`
	Capacity string `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Weight   string `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Variant is a purchasable variation of a product, such as a size.
// Variant ids share the cart line id space with product ids.
type Variant struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	Price         money.Cents       `json:"price" yaml:"price"`
	Images        []string          `json:"images" yaml:"images"`
	Attributes    map[string]string `json:"attributes" yaml:"attributes"`
	InStock       bool              `json:"inStock" yaml:"inStock"`
	StockQuantity int               `json:"stockQuantity" yaml:"stockQuantity"`
}

// Product is a single catalog entry.
type Product struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Description    string          `json:"description" yaml:"description"`
	Price          money.Cents     `json:"price" yaml:"price"`
	OriginalPrice  *money.Cents    `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Images         []string        `json:"images" yaml:"images"`
	Category       Category        `json:"category" yaml:"category"`
	Subcategory    string          `json:"subcategory" yaml:"subcategory"`
	Brand          string          `json:"brand" yaml:"brand"`
	Specifications []Specification `json:"specifications" yaml:"specifications"`
	Features       []string        `json:"features" yaml:"features"`
	Materials      []string        `json:"materials" yaml:"materials"`
	Dimensions     Dimensions      `json:"dimensions" yaml:"dimensions"`
	InStock        bool            `json:"inStock" yaml:"inStock"`
	StockQuantity  int             `json:"stockQuantity" yaml:"stockQuantity"`
	Rating         float64         `json:"rating" yaml:"rating"`
	ReviewCount    int             `json:"reviewCount" yaml:"reviewCount"`
	Variants       []Variant       `json:"variants,omitempty" yaml:"variants,omitempty"`
	Tags           []string        `json:"tags" yaml:"tags"`
	IsFeatured     bool            `json:"isFeatured" yaml:"isFeatured"`
	IsNew          bool            `json:"isNew" yaml:"isNew"`
	IsSale         bool            `json:"isSale" yaml:"isSale"`
}

// Review is a customer review attached to a product by id.
type Review struct {
	ID        string `json:"id" yaml:"id"`
	ProductID string `json:"productId" yaml:"productId"`
	UserName  string `json:"userName" yaml:"userName"`
	Rating    int    `json:"rating" yaml:"rating"`
	Title     string `json:"title" yaml:"title"`
	Comment   string `json:"comment" yaml:"comment"`
	Date      string `json:"date" yaml:"date"`
	Verified  bool   `json:"verified" yaml:"verified"`
}

// Data is the raw catalog content as loaded from the seed file.
type Data struct {
	Products []Product `yaml:"products"`
	Reviews  []Review  `yaml:"reviews"`
}
