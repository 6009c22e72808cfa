package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cookstore/internal/catalog"
)

type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

func newCatalogEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := catalog.LoadSeed()
	require.NoError(t, err)
	h := NewCatalogHandler(svc)

	engine := gin.New()
	api := engine.Group("/api")
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/reviews", h.GetReviews)
	api.GET("/products/:id/recommendations", h.GetRecommendations)
	api.GET("/featured", h.Featured)
	api.GET("/search", h.Search)
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:category", h.GetCategory)
	return engine
}

func get(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) productListResponse {
	t.Helper()
	var resp productListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListProducts(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, 6, resp.Total)
	assert.Len(t, resp.Products, 6)
}

func TestListProductsByCategory(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products?category=frying-pans")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.Equal(t, 2, resp.Total)
	for _, p := range resp.Products {
		assert.Equal(t, catalog.CategoryFryingPans, p.Category)
	}
}

func TestListProductsFeatured(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products?featured=true")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, 3, resp.Total)

	// The dedicated shelf endpoint returns the same set.
	w = get(t, engine, "/api/featured")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.Products, decodeList(t, w).Products)
}

func TestListProductsSorted(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products?sort=price-low")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.NotEmpty(t, resp.Products)
	assert.Equal(t, "wooden-utensil-set", resp.Products[0].ID)

	w = get(t, engine, "/api/products?sort=price-high")
	resp = decodeList(t, w)
	assert.Equal(t, "nonstick-signature-set", resp.Products[0].ID)
}

func TestListProductsPriceRange(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products?min_price=60&max_price=200")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	assert.Equal(t, 4, resp.Total)

	w = get(t, engine, "/api/products?min_price=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProduct(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products/cast-iron-dutch-oven")
	require.Equal(t, http.StatusOK, w.Code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Cast Iron Dutch Oven", p.Name)

	w = get(t, engine, "/api/products/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReviews(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products/nonstick-signature-set/reviews")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Reviews []catalog.Review `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, 5, resp.Reviews[0].Rating)

	// A product without reviews yields an empty list, not an error.
	w = get(t, engine, "/api/products/wooden-utensil-set/reviews")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Reviews)

	w = get(t, engine, "/api/products/missing/reviews")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecommendations(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/products/pro-grade-nonstick-pan/recommendations")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []catalog.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.Products), 4)
	for _, p := range resp.Products {
		assert.NotEqual(t, "pro-grade-nonstick-pan", p.ID)
		assert.Equal(t, catalog.CategoryFryingPans, p.Category)
	}

	w = get(t, engine, "/api/products/missing/recommendations")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/search?q=dutch")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Query    string            `json:"query"`
		Products []catalog.Product `json:"products"`
		Total    int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dutch", resp.Query)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "cast-iron-dutch-oven", resp.Products[0].ID)

	// An absent query matches nothing but still succeeds.
	w = get(t, engine, "/api/search")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)
}

func TestListCategories(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Categories []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 5)
	assert.Equal(t, "cookware-sets", resp.Categories[0].Value)
	assert.Equal(t, "Cookware Sets", resp.Categories[0].Label)
}

func TestGetCategory(t *testing.T) {
	engine := newCatalogEngine(t)

	w := get(t, engine, "/api/categories/frying-pans?sort=price-high")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeList(t, w)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "copper-core-frying-pan", resp.Products[0].ID)

	w = get(t, engine, "/api/categories/air-fryers")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
