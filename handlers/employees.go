package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quicklink/models"
	"quicklink/services/employee"
)

// EmployeeHandler exposes the staff roster to the admin screens.
type EmployeeHandler struct {
	Svc    employee.Service
	Logger *zap.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(svc employee.Service, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{Svc: svc, Logger: logger}
}

// ListEmployees handles GET /api/admin/employees.
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.List())
}

// CreateEmployee handles POST /api/admin/employees.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var draft models.EmployeeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	emp, err := h.Svc.Add(draft)
	if err != nil {
		h.Logger.Warn("CreateEmployee: rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee handles PUT /api/admin/employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	emp, err := h.Svc.Update(c.Param("id"), update)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, emp)
}
