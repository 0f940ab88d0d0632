package model

// DefaultCategory is assigned to items created without a category.
const DefaultCategory = "Other"

// DefaultQuantity is assigned to items created without a quantity.
const DefaultQuantity = "1"

// GroceryItem is an entry on the shopping list.
type GroceryItem struct {
	ID        string `json:"id" yaml:"id" db:"id"`
	Name      string `json:"name" yaml:"name" db:"name"`
	Quantity  string `json:"quantity" yaml:"quantity" db:"quantity"`
	Completed bool   `json:"completed" yaml:"completed" db:"completed"`
	Category  string `json:"category" yaml:"category" db:"category"`

	// SortOrder preserves insertion order when the list is persisted.
	SortOrder int `json:"-" yaml:"-" db:"sort_order"`
}
