package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quicklink/models"
	"quicklink/services/marketplace"
)

// MarketplaceHandler exposes the services catalog, products, the food menu
// and the cart.
type MarketplaceHandler struct {
	Svc    marketplace.Service
	Logger *zap.Logger
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(svc marketplace.Service, logger *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{Svc: svc, Logger: logger}
}

func (h *MarketplaceHandler) marketplaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, marketplace.ErrProductNotFound), errors.Is(err, marketplace.ErrFoodItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, marketplace.ErrCartEmpty):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// ListServices handles GET /api/services.
func (h *MarketplaceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ErrandServices())
}

// ListProducts handles GET /api/products (?featured=true).
func (h *MarketplaceHandler) ListProducts(c *gin.Context) {
	featured := c.Query("featured") == "true"
	c.JSON(http.StatusOK, h.Svc.Products(featured))
}

// ListFoodItems handles GET /api/food (?available=true).
func (h *MarketplaceHandler) ListFoodItems(c *gin.Context) {
	available := c.Query("available") == "true"
	c.JSON(http.StatusOK, h.Svc.FoodItems(available))
}

// CreateProduct handles POST /api/admin/products.
func (h *MarketplaceHandler) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if draft.Price < 0 || draft.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and stock must be non-negative"})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.AddProduct(draft))
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *MarketplaceHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.Svc.UpdateProduct(c.Param("id"), update)
	if err != nil {
		h.marketplaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateFoodItem handles POST /api/admin/food.
func (h *MarketplaceHandler) CreateFoodItem(c *gin.Context) {
	var draft models.FoodItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if draft.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}
	c.JSON(http.StatusCreated, h.Svc.AddFoodItem(draft))
}

// UpdateFoodItem handles PUT /api/admin/food/:id.
func (h *MarketplaceHandler) UpdateFoodItem(c *gin.Context) {
	var update models.FoodItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	item, err := h.Svc.UpdateFoodItem(c.Param("id"), update)
	if err != nil {
		h.marketplaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetCart handles GET /api/cart.
func (h *MarketplaceHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Cart())
}

// AddCartItem handles POST /api/cart/items.
func (h *MarketplaceHandler) AddCartItem(c *gin.Context) {
	var body struct {
		ID       string          `json:"id" binding:"required"`
		Kind     models.CartKind `json:"type" binding:"required"`
		Quantity int             `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	var (
		cart []models.CartItem
		err  error
	)
	switch body.Kind {
	case models.CartKindProduct:
		cart, err = h.Svc.AddProductToCart(body.ID, body.Quantity)
	case models.CartKindFood:
		cart, err = h.Svc.AddFoodToCart(body.ID, body.Quantity)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be product or food"})
		return
	}
	if err != nil {
		h.marketplaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveCartItem handles DELETE /api/cart/items/:id. Absent ids are ignored.
func (h *MarketplaceHandler) RemoveCartItem(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.RemoveFromCart(c.Param("id")))
}

// ClearCart handles DELETE /api/cart.
func (h *MarketplaceHandler) ClearCart(c *gin.Context) {
	h.Svc.ClearCart()
	c.Status(http.StatusNoContent)
}

// Checkout handles POST /api/cart/checkout.
func (h *MarketplaceHandler) Checkout(c *gin.Context) {
	var input marketplace.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	requests, err := h.Svc.Checkout(input)
	if err != nil {
		h.Logger.Warn("Checkout: rejected", zap.Error(err))
		h.marketplaceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, requests)
}
