package marketplace

import "quicklink/models"

// ErrandServices returns the fixed services catalog shown on the home page.
func (s *DefaultService) ErrandServices() []models.Service {
	return s.Store.Services()
}

// Products returns the product catalog, optionally only featured entries.
func (s *DefaultService) Products(featuredOnly bool) []models.Product {
	products := s.Store.Products()
	if !featuredOnly {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct adds a catalog entry.
func (s *DefaultService) AddProduct(draft models.ProductDraft) models.Product {
	return s.Store.AddProduct(draft)
}

// UpdateProduct applies a partial update to a catalog entry.
func (s *DefaultService) UpdateProduct(id string, update models.ProductUpdate) (models.Product, error) {
	p, ok := s.Store.UpdateProduct(id, update)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// FoodItems returns the food menu, optionally only available entries.
func (s *DefaultService) FoodItems(availableOnly bool) []models.FoodItem {
	items := s.Store.FoodItems()
	if !availableOnly {
		return items
	}
	var out []models.FoodItem
	for _, item := range items {
		if item.Available {
			out = append(out, item)
		}
	}
	return out
}

// AddFoodItem adds a menu entry.
func (s *DefaultService) AddFoodItem(draft models.FoodItemDraft) models.FoodItem {
	return s.Store.AddFoodItem(draft)
}

// UpdateFoodItem applies a partial update to a menu entry.
func (s *DefaultService) UpdateFoodItem(id string, update models.FoodItemUpdate) (models.FoodItem, error) {
	item, ok := s.Store.UpdateFoodItem(id, update)
	if !ok {
		return models.FoodItem{}, ErrFoodItemNotFound
	}
	return item, nil
}
