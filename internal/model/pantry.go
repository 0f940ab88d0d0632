package model

import "time"

// DateLayout is the calendar date format used for expiration dates.
const DateLayout = "2006-01-02"

// PantryItem is a stocked item tracked until it expires.
type PantryItem struct {
	ID             string    `json:"id" yaml:"id" db:"id"`
	Name           string    `json:"name" yaml:"name" db:"name"`
	Category       string    `json:"category" yaml:"category" db:"category"`
	ExpirationDate time.Time `json:"expiration_date" yaml:"expiration_date" db:"expiration_date"`
	Quantity       string    `json:"quantity" yaml:"quantity" db:"quantity"`

	// DaysUntilExpiry is computed once when the item is added and is not
	// refreshed afterwards.
	DaysUntilExpiry int `json:"days_until_expiry" yaml:"days_until_expiry" db:"days_until_expiry"`

	SortOrder int `json:"-" yaml:"-" db:"sort_order"`
}
