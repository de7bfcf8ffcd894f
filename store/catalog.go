package store

import (
	"strconv"

	"quicklink/models"
)

// AddProduct creates a product from a draft.
func (s *Store) AddProduct(draft models.ProductDraft) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	p := models.Product{
		ID:       strconv.Itoa(s.productSeq),
		Name:     draft.Name,
		Price:    draft.Price,
		Category: draft.Category,
		Image:    draft.Image,
		Stock:    draft.Stock,
		Featured: draft.Featured,
	}
	s.products = append(s.products, p)
	return p
}

// Products returns a snapshot of the product catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.products)
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

// UpdateProduct merges the non-nil fields of the update into the matching
// product. Unknown ids leave the collection untouched.
func (s *Store) UpdateProduct(id string, update models.ProductUpdate) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Stock != nil {
			p.Stock = *update.Stock
		}
		if update.Featured != nil {
			p.Featured = *update.Featured
		}
		return *p, true
	}
	return models.Product{}, false
}

// AddFoodItem creates a food item from a draft.
func (s *Store) AddFoodItem(draft models.FoodItemDraft) models.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foodSeq++
	item := models.FoodItem{
		ID:        strconv.Itoa(s.foodSeq),
		Name:      draft.Name,
		Price:     draft.Price,
		Category:  draft.Category,
		Image:     draft.Image,
		Available: draft.Available,
	}
	s.foodItems = append(s.foodItems, item)
	return item
}

// FoodItems returns a snapshot of the food menu in insertion order.
func (s *Store) FoodItems() []models.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot(s.foodItems)
}

// FoodItem returns the food item with the given id.
func (s *Store) FoodItem(id string) (models.FoodItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.foodItems {
		if s.foodItems[i].ID == id {
			return s.foodItems[i], true
		}
	}
	return models.FoodItem{}, false
}

// UpdateFoodItem merges the non-nil fields of the update into the matching
// food item. Unknown ids leave the collection untouched.
func (s *Store) UpdateFoodItem(id string, update models.FoodItemUpdate) (models.FoodItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.foodItems {
		if s.foodItems[i].ID != id {
			continue
		}
		item := &s.foodItems[i]
		if update.Name != nil {
			item.Name = *update.Name
		}
		if update.Price != nil {
			item.Price = *update.Price
		}
		if update.Category != nil {
			item.Category = *update.Category
		}
		if update.Image != nil {
			item.Image = *update.Image
		}
		if update.Available != nil {
			item.Available = *update.Available
		}
		return *item, true
	}
	return models.FoodItem{}, false
}
