package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/cookstore/configs"
	"github.com/yourusername/cookstore/internal/cart"
	"github.com/yourusername/cookstore/internal/session"
	"github.com/yourusername/cookstore/pkg/money"
)

// CartHandler handles HTTP requests for the session cart. Pricing rules
// are read from the live configuration on every request, so a hot reload
// of the tax rate or shipping constants takes effect immediately.
//
// CartHandler 处理会话购物车的HTTP请求。
// 每个请求都从实时配置中读取定价规则，因此税率或运费常量的热重载会立即生效。
type CartHandler struct {
	sessions *session.Registry
	config   *configs.ViperConfig
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(sessions *session.Registry, config *configs.ViperConfig) *CartHandler {
	return &CartHandler{sessions: sessions, config: config}
}

func (h *CartHandler) rules() cart.Rules {
	p := h.config.Get().Pricing
	return cart.Rules{
		TaxRateBps:            p.TaxRateBps,
		FreeShippingThreshold: money.Cents(p.FreeShippingThresholdCents),
		ShippingFee:           money.Cents(p.ShippingFeeCents),
	}
}

func (h *CartHandler) sessionCart(c *gin.Context) (*cart.Store, bool) {
	store, err := h.sessions.Cart(c.Request.Context(), session.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return nil, false
	}
	return store, true
}

// cartView is the JSON shape returned by every cart endpoint: the ordered
// line list plus the derived totals.
type cartView struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func (h *CartHandler) view(store *cart.Store) cartView {
	items := store.Items()
	return cartView{
		Items:  items,
		Totals: cart.ComputeTotals(items, h.rules()),
	}
}

// GetCart handles GET requests for the current session's cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.sessionCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.view(store))
}

// addItemRequest is the payload for adding a line to the cart. Price is a
// snapshot supplied by the caller; it is not re-derived from the catalog.
type addItemRequest struct {
	ID       string      `json:"id" binding:"required"`
	Name     string      `json:"name" binding:"required"`
	Price    money.Cents `json:"price"`
	Quantity int         `json:"quantity"`
	Image    string      `json:"image"`
	Variant  string      `json:"variant"`
}

// AddItem handles POST requests to add a product or variant to the cart.
// Adding an id already in the cart increments its quantity.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	store, ok := h.sessionCart(c)
	if !ok {
		return
	}
	err := store.Add(c.Request.Context(), cart.Line{
		ID:        req.ID,
		Name:      req.Name,
		UnitPrice: req.Price,
		Quantity:  req.Quantity,
		Image:     req.Image,
		Variant:   req.Variant,
	})
	if err != nil {
		// In-memory state is already updated; the next successful write
		// catches persistence up.
		slog.Warn("cart_add_persist", "error", err)
	}
	c.JSON(http.StatusOK, h.view(store))
}

// updateItemRequest is the payload for setting a line's quantity.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT requests to set a line's quantity to an absolute
// value. A quantity of zero or below removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store, ok := h.sessionCart(c)
	if !ok {
		return
	}
	if err := store.SetQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		slog.Warn("cart_update_persist", "error", err)
	}
	c.JSON(http.StatusOK, h.view(store))
}

// RemoveItem handles DELETE requests for a cart line. Removing an id that
// is not in the cart is a no-op and still succeeds.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store, ok := h.sessionCart(c)
	if !ok {
		return
	}
	if err := store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		slog.Warn("cart_remove_persist", "error", err)
	}
	c.JSON(http.StatusOK, h.view(store))
}
