package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicklink/models"
	"quicklink/services/notification"
	"quicklink/services/request"
	"quicklink/store"
)

func newTestService() *DefaultService {
	st := store.New(store.DefaultSeed())
	return &DefaultService{
		Store:    st,
		Requests: &request.DefaultService{Store: st, Notifier: notification.Noop{}},
	}
}

func checkoutInput() CheckoutInput {
	return CheckoutInput{
		CustomerName:    "Alice",
		CustomerPhone:   "0799999999",
		CustomerEmail:   "alice@email.com",
		DropoffLocation: "Kilimani",
		DatePreference:  "2025-02-01",
		TimePreference:  "12:00",
	}
}

func TestErrandServices(t *testing.T) {
	svc := newTestService()
	services := svc.ErrandServices()
	require.Len(t, services, 9)
	assert.Equal(t, "Taxi Rides", services[0].Name)
}

func TestProductsFeaturedOnly(t *testing.T) {
	svc := newTestService()

	assert.Len(t, svc.Products(false), 8)
	featured := svc.Products(true)
	require.Len(t, featured, 3)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestFoodItemsAvailableOnly(t *testing.T) {
	svc := newTestService()
	assert.Len(t, svc.FoodItems(true), 6)

	unavailable := false
	_, err := svc.UpdateFoodItem("1", models.FoodItemUpdate{Available: &unavailable})
	require.NoError(t, err)

	assert.Len(t, svc.FoodItems(true), 5)
	assert.Len(t, svc.FoodItems(false), 6)
}

func TestAddProductToCartSnapshots(t *testing.T) {
	svc := newTestService()

	cart, err := svc.AddProductToCart("1", 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "iPhone 15 Pro", cart[0].Name)
	assert.Equal(t, 120000.0, cart[0].Price)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, models.CartKindProduct, cart[0].Kind)

	// Same id merges instead of duplicating.
	cart, err = svc.AddProductToCart("1", 1)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestAddToCartRejectsBadInput(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddProductToCart("1", 0)
	require.Error(t, err)

	_, err = svc.AddProductToCart("99", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddFoodToCart("99", 1)
	assert.ErrorIs(t, err, ErrFoodItemNotFound)
}

func TestCheckoutBuildsOneRequestPerKind(t *testing.T) {
	svc := newTestService()

	_, err := svc.AddProductToCart("8", 1) // Gaming Mouse, 3500
	require.NoError(t, err)
	_, err = svc.AddFoodToCart("1", 2) // Chicken Burger, 650
	require.NoError(t, err)
	_, err = svc.AddFoodToCart("4", 1) // Coca Cola, 150
	require.NoError(t, err)

	requests, err := svc.Checkout(checkoutInput())
	require.NoError(t, err)
	require.Len(t, requests, 2)

	productOrder, foodOrder := requests[0], requests[1]
	assert.Equal(t, models.RequestKindProduct, productOrder.Kind)
	assert.Equal(t, "Gaming Mouse Order", productOrder.Title)
	require.NotNil(t, productOrder.Budget)
	assert.Equal(t, 3500.0, *productOrder.Budget)

	assert.Equal(t, models.RequestKindFood, foodOrder.Kind)
	assert.Equal(t, "Food Order (2 items)", foodOrder.Title)
	assert.Equal(t, "2x Chicken Burger, 1x Coca Cola", foodOrder.Description)
	require.NotNil(t, foodOrder.Budget)
	assert.Equal(t, 1450.0, *foodOrder.Budget)

	assert.Empty(t, svc.Cart(), "checkout must clear the cart")
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newTestService()
	_, err := svc.Checkout(checkoutInput())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutInvalidCustomerKeepsCart(t *testing.T) {
	svc := newTestService()
	_, err := svc.AddProductToCart("1", 1)
	require.NoError(t, err)

	input := checkoutInput()
	input.CustomerPhone = ""
	_, err = svc.Checkout(input)
	require.Error(t, err)
	assert.Len(t, svc.Cart(), 1, "failed checkout must not clear the cart")
}
