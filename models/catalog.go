package models

// Service is an entry in the fixed errand-services catalog shown to
// customers. The catalog is seed data; there are no mutation operations.
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Product is a marketplace catalog entry.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Stock    int     `json:"stock"`
	Featured bool    `json:"featured,omitempty"`
}

// ProductDraft carries the caller-supplied fields of a new product.
type ProductDraft struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Stock    int     `json:"stock"`
	Featured bool    `json:"featured,omitempty"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Category *string  `json:"category,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Stock    *int     `json:"stock,omitempty"`
	Featured *bool    `json:"featured,omitempty"`
}

// FoodItem is a food-menu catalog entry.
type FoodItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Available bool    `json:"available"`
}

// FoodItemDraft carries the caller-supplied fields of a new food item.
type FoodItemDraft struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	Available bool    `json:"available"`
}

// FoodItemUpdate is a partial update; nil fields are left untouched.
type FoodItemUpdate struct {
	Name      *string  `json:"name,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Image     *string  `json:"image,omitempty"`
	Available *bool    `json:"available,omitempty"`
}
