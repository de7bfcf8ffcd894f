package routes

import (
	"github.com/gin-gonic/gin"

	"quicklink/handlers"
	"quicklink/middleware"
	"quicklink/store"
)

// RegisterAdminRoutes sets up endpoints for the admin screens. Everything
// except the mode toggle sits behind the admin-mode gate.
func RegisterAdminRoutes(r *gin.Engine, st *store.Store, hb *handlers.Bundle) {
	r.POST("/api/admin/mode", hb.Admin.SetAdminMode)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminModeMiddleware(st))

		adminGroup.GET("/dashboard", hb.Admin.Dashboard)
		adminGroup.GET("/notifications", hb.Admin.Notifications)

		adminGroup.GET("/requests", hb.Requests.ListRequests)
		adminGroup.PUT("/requests/:id/status", hb.Requests.UpdateStatus)
		adminGroup.POST("/requests/:id/assign", hb.Requests.AssignEmployee)
		adminGroup.PUT("/requests/:id/payment", hb.Requests.ReviewPayment)
		adminGroup.POST("/export", hb.Requests.ExportRequests)
		adminGroup.PUT("/selected-request", hb.Admin.SelectRequest)
		adminGroup.GET("/selected-request", hb.Admin.SelectedRequest)

		adminGroup.GET("/employees", hb.Employees.ListEmployees)
		adminGroup.POST("/employees", hb.Employees.CreateEmployee)
		adminGroup.PUT("/employees/:id", hb.Employees.UpdateEmployee)

		adminGroup.POST("/products", hb.Marketplace.CreateProduct)
		adminGroup.PUT("/products/:id", hb.Marketplace.UpdateProduct)
		adminGroup.POST("/food", hb.Marketplace.CreateFoodItem)
		adminGroup.PUT("/food/:id", hb.Marketplace.UpdateFoodItem)
	}
}
