package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quicklink/models"
	"quicklink/services/request"
)

// RequestHandler exposes the request lifecycle to customers and admins.
type RequestHandler struct {
	Svc    request.Service
	Logger *zap.Logger
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(svc request.Service, logger *zap.Logger) *RequestHandler {
	return &RequestHandler{Svc: svc, Logger: logger}
}

func (h *RequestHandler) requestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, request.ErrRequestNotFound), errors.Is(err, request.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// SubmitRequest handles POST /api/requests.
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var draft models.RequestDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.Svc.Submit(draft)
	if err != nil {
		h.Logger.Warn("SubmitRequest: rejected", zap.Error(err))
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// TrackRequests handles GET /api/requests/track?phone=...&email=...
func (h *RequestHandler) TrackRequests(c *gin.Context) {
	phone := c.Query("phone")
	email := c.Query("email")
	if phone == "" && email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide a phone or email to track requests"})
		return
	}
	c.JSON(http.StatusOK, h.Svc.Track(phone, email))
}

// GetRequest handles GET /api/requests/:id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	req, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ClaimPayment handles POST /api/requests/:id/payment — the customer's
// "Mark as Paid" action.
func (h *RequestHandler) ClaimPayment(c *gin.Context) {
	req, err := h.Svc.ClaimPayment(c.Param("id"))
	if err != nil {
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListRequests handles GET /api/admin/requests with the screen's filters.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	q := request.Query{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Kind:    c.Query("type"),
		Payment: c.Query("payment"),
	}
	c.JSON(http.StatusOK, h.Svc.Filter(q))
}

// UpdateStatus handles PUT /api/admin/requests/:id/status.
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.RequestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.Svc.UpdateStatus(c.Param("id"), body.Status)
	if err != nil {
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// AssignEmployee handles POST /api/admin/requests/:id/assign.
func (h *RequestHandler) AssignEmployee(c *gin.Context) {
	var body struct {
		EmployeeID string `json:"employeeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.Svc.Assign(c.Param("id"), body.EmployeeID)
	if err != nil {
		h.Logger.Warn("AssignEmployee: failed",
			zap.String("requestID", c.Param("id")),
			zap.String("employeeID", body.EmployeeID),
			zap.Error(err),
		)
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ReviewPayment handles PUT /api/admin/requests/:id/payment.
func (h *RequestHandler) ReviewPayment(c *gin.Context) {
	var body struct {
		Status models.PaymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req, err := h.Svc.ReviewPayment(c.Param("id"), body.Status)
	if err != nil {
		h.requestError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ExportRequests handles POST /api/admin/requests/export and streams the
// selection back as a CSV download.
func (h *RequestHandler) ExportRequests(c *gin.Context) {
	var body struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	data, err := h.Svc.ExportCSV(body.IDs)
	if err != nil {
		h.Logger.Error("ExportRequests: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="requests_export.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
