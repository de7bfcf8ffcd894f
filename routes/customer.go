package routes

import (
	"github.com/gin-gonic/gin"

	"quicklink/handlers"
)

// RegisterCustomerRoutes registers the public, customer-facing endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.Marketplace.ListServices)
		api.GET("/products", hb.Marketplace.ListProducts)
		api.GET("/food", hb.Marketplace.ListFoodItems)
		api.GET("/contact", hb.Contact.Contact)

		api.POST("/requests", hb.Requests.SubmitRequest)
		api.GET("/requests", hb.Requests.TrackRequests)
		api.GET("/requests/:id", hb.Requests.GetRequest)
		api.POST("/requests/:id/payment", hb.Requests.ClaimPayment)

		api.GET("/cart", hb.Marketplace.GetCart)
		api.POST("/cart/items", hb.Marketplace.AddCartItem)
		api.DELETE("/cart/items/:id", hb.Marketplace.RemoveCartItem)
		api.DELETE("/cart", hb.Marketplace.ClearCart)
		api.POST("/cart/checkout", hb.Marketplace.Checkout)
	}
}
