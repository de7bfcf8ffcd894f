package marketplace

import (
	"errors"

	"quicklink/models"
	"quicklink/services/request"
	"quicklink/store"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrFoodItemNotFound = errors.New("food item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)

// CheckoutInput is the customer/delivery block collected at checkout.
type CheckoutInput struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail"`
	DropoffLocation string `json:"dropoffLocation"`
	DatePreference  string `json:"datePreference"`
	TimePreference  string `json:"timePreference"`
	Notes           string `json:"notes,omitempty"`
}

// Service covers the errand-services catalog, the marketplace catalog, the
// food menu and the cart.
type Service interface {
	ErrandServices() []models.Service

	Products(featuredOnly bool) []models.Product
	AddProduct(draft models.ProductDraft) models.Product
	UpdateProduct(id string, update models.ProductUpdate) (models.Product, error)

	FoodItems(availableOnly bool) []models.FoodItem
	AddFoodItem(draft models.FoodItemDraft) models.FoodItem
	UpdateFoodItem(id string, update models.FoodItemUpdate) (models.FoodItem, error)

	Cart() []models.CartItem
	AddProductToCart(id string, quantity int) ([]models.CartItem, error)
	AddFoodToCart(id string, quantity int) ([]models.CartItem, error)
	RemoveFromCart(id string) []models.CartItem
	ClearCart()

	// Checkout turns the cart into one request per cart kind and empties it.
	Checkout(input CheckoutInput) ([]models.Request, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Store    *store.Store
	Requests request.Service
}
