// Package handler provides HTTP request handlers for the storefront API.
// It implements the presentation layer of the application, handling HTTP
// requests and responses while delegating to the catalog and cart logic.
//
// Package handler 提供商店API的HTTP请求处理程序。
// 它实现了应用程序的表示层，处理HTTP请求和响应，
// 并将业务逻辑委托给目录和购物车层。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/cookstore/internal/catalog"
	"github.com/yourusername/cookstore/pkg/money"
)

// CatalogHandler handles HTTP requests for the product catalog.
// It acts as an adapter between the HTTP layer and the catalog service,
// translating query parameters into catalog queries.
type CatalogHandler struct {
	service *catalog.Service
}

// NewCatalogHandler creates a new catalog handler with the given service.
func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// listQuery carries the query parameters accepted by ListProducts.
type listQuery struct {
	Category    string `form:"category"`
	Sort        string `form:"sort"`
	MinPrice    string `form:"min_price"`
	MaxPrice    string `form:"max_price"`
	Brand       string `form:"brand"`
	Material    string `form:"material"`
	InStockOnly bool   `form:"in_stock"`
	Featured    bool   `form:"featured"`
}

// ListProducts handles GET requests for product listings. It supports
// narrowing by category, brand, material, price range and stock, and
// ordering by name, price or rating.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var products []catalog.Product
	switch {
	case q.Featured:
		products = h.service.Featured()
	case q.Category != "":
		products = h.service.ByCategory(catalog.Category(q.Category))
	default:
		products = h.service.All()
	}

	opts := catalog.FilterOptions{InStockOnly: q.InStockOnly}
	if q.Brand != "" {
		opts.Brands = []string{q.Brand}
	}
	if q.Material != "" {
		opts.Materials = []string{q.Material}
	}
	if q.MinPrice != "" {
		p, err := money.Parse(q.MinPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		opts.MinPrice = p
	}
	if q.MaxPrice != "" {
		p, err := money.Parse(q.MaxPrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		opts.MaxPrice = p
	}
	products = catalog.Filter(products, opts)

	if q.Sort != "" {
		products = catalog.Sort(products, catalog.SortKey(q.Sort))
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET requests for a single product by id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	product, ok := h.service.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetReviews handles GET requests for a product's reviews. A product with
// no reviews yields an empty list, not an error.
func (h *CatalogHandler) GetReviews(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.service.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": h.service.Reviews(id)})
}

// GetRecommendations handles GET requests for products related to the
// given one: up to four same-category products, never the product itself.
func (h *CatalogHandler) GetRecommendations(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.service.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.service.Recommended(id)})
}

// Featured handles GET requests for the featured product shelf.
func (h *CatalogHandler) Featured(c *gin.Context) {
	products := h.service.Featured()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// Search handles GET requests for free-text product search. The match is
// a case-insensitive substring test over name, description and tags; an
// empty query matches nothing.
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results := h.service.Search(query)
	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"products": results,
		"total":    len(results),
	})
}

// ListCategories handles GET requests for the category enumeration.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	type categoryView struct {
		Value catalog.Category `json:"value"`
		Label string           `json:"label"`
	}
	out := make([]categoryView, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		out = append(out, categoryView{Value: cat, Label: cat.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetCategory handles GET requests for a single category's products,
// sorted by the optional sort query parameter.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat := catalog.Category(c.Param("category"))
	if !cat.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	products := h.service.ByCategory(cat)
	if sortKey := c.Query("sort"); sortKey != "" {
		products = catalog.Sort(products, catalog.SortKey(sortKey))
	}
	c.JSON(http.StatusOK, gin.H{
		"category": cat,
		"label":    cat.Label(),
		"products": products,
		"total":    len(products),
	})
}
