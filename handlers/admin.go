package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quicklink/services/notification"
	"quicklink/services/request"
	"quicklink/store"
)

// AdminHandler encapsulates the dashboard, the admin-mode toggle and the
// ancillary UI state the admin screens share.
type AdminHandler struct {
	Requests request.Service
	Notifier notification.Service
	Store    *store.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rs request.Service, ns notification.Service, st *store.Store) *AdminHandler {
	return &AdminHandler{Requests: rs, Notifier: ns, Store: st}
}

// Dashboard handles GET /api/admin/dashboard.
func (ah *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Requests.DashboardStats())
}

// Notifications handles GET /api/admin/notifications (?limit=N).
func (ah *AdminHandler) Notifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	c.JSON(http.StatusOK, ah.Notifier.Recent(limit))
}

// SetAdminMode handles POST /api/admin/mode. This is the original app's
// admin toggle, not authentication.
func (ah *AdminHandler) SetAdminMode(c *gin.Context) {
	var body struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ah.Store.SetAdminMode(*body.Enabled)
	zap.L().Info("admin mode changed", zap.Bool("enabled", *body.Enabled))
	c.JSON(http.StatusOK, gin.H{"adminMode": *body.Enabled})
}

// SelectRequest handles PUT /api/admin/requests/selected. An empty id clears
// the selection.
func (ah *AdminHandler) SelectRequest(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !ah.Store.SelectRequest(body.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectedRequest handles GET /api/admin/requests/selected.
func (ah *AdminHandler) SelectedRequest(c *gin.Context) {
	req, ok := ah.Store.SelectedRequest()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"selected": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": req})
}
