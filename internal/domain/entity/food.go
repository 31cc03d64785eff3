package entity

// FoodItem is a purchasable menu entry managed by administrators.
// All fields are mandatory; a partially filled item is rejected at creation.
type FoodItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // Always >= 0.
	Image       string  `json:"image"` // URL or path, stored as an opaque reference.
	Category    string  `json:"category"`
}
