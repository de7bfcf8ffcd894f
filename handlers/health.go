package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quicklink/store"
	"quicklink/utils"
)

// HealthHandler reports process health and collection sizes.
type HealthHandler struct {
	Store *store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{Store: st}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.BuildHealthStatus(map[string]int{
		"requests":  len(h.Store.Requests()),
		"employees": len(h.Store.Employees()),
		"products":  len(h.Store.Products()),
		"foodItems": len(h.Store.FoodItems()),
		"cart":      len(h.Store.Cart()),
	}))
}
