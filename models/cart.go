package models

// CartItem is one line in the shopping cart. ID mirrors the id of the
// referenced Product or FoodItem; name and price are snapshots taken when the
// line was added.
type CartItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Kind     CartKind `json:"type"`
}
