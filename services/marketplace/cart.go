package marketplace

import (
	"fmt"
	"strings"

	"quicklink/models"
)

// Cart returns the current cart contents.
func (s *DefaultService) Cart() []models.CartItem {
	return s.Store.Cart()
}

// AddProductToCart puts quantity units of a catalog product in the cart,
// snapshotting its name and price.
func (s *DefaultService) AddProductToCart(id string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	p, ok := s.Store.Product(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	cart := s.Store.AddToCart(models.CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: quantity,
		Kind:     models.CartKindProduct,
	})
	return cart, nil
}

// AddFoodToCart puts quantity units of a menu item in the cart, snapshotting
// its name and price.
func (s *DefaultService) AddFoodToCart(id string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	item, ok := s.Store.FoodItem(id)
	if !ok {
		return nil, ErrFoodItemNotFound
	}
	cart := s.Store.AddToCart(models.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
		Kind:     models.CartKindFood,
	})
	return cart, nil
}

// RemoveFromCart drops a cart line. Absent ids are ignored.
func (s *DefaultService) RemoveFromCart(id string) []models.CartItem {
	return s.Store.RemoveFromCart(id)
}

// ClearCart empties the cart.
func (s *DefaultService) ClearCart() {
	s.Store.ClearCart()
}

// Checkout submits the cart as requests, one per cart kind, and clears the
// cart once every request went through. Product lines and food lines become
// separate requests because they are dispatched to different teams.
func (s *DefaultService) Checkout(input CheckoutInput) ([]models.Request, error) {
	cart := s.Store.Cart()
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}

	byKind := map[models.CartKind][]models.CartItem{}
	for _, line := range cart {
		byKind[line.Kind] = append(byKind[line.Kind], line)
	}

	var requests []models.Request
	for _, kind := range []models.CartKind{models.CartKindProduct, models.CartKindFood} {
		lines := byKind[kind]
		if len(lines) == 0 {
			continue
		}
		draft := buildOrderDraft(kind, lines, input)
		req, err := s.Requests.Submit(draft)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	s.Store.ClearCart()
	return requests, nil
}

func buildOrderDraft(kind models.CartKind, lines []models.CartItem, input CheckoutInput) models.RequestDraft {
	var total float64
	descriptions := make([]string, 0, len(lines))
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
		descriptions = append(descriptions, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}

	title := fmt.Sprintf("%s Order", lines[0].Name)
	if len(lines) > 1 {
		label := "Product"
		if kind == models.CartKindFood {
			label = "Food"
		}
		title = fmt.Sprintf("%s Order (%d items)", label, len(lines))
	}

	requestKind := models.RequestKindProduct
	if kind == models.CartKindFood {
		requestKind = models.RequestKindFood
	}

	return models.RequestDraft{
		Kind:            requestKind,
		Title:           title,
		Description:     strings.Join(descriptions, ", "),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		DropoffLocation: input.DropoffLocation,
		DatePreference:  input.DatePreference,
		TimePreference:  input.TimePreference,
		Budget:          &total,
		Notes:           input.Notes,
	}
}
