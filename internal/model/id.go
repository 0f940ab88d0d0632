package model

import "github.com/google/uuid"

// NewID returns a time-ordered unique identifier. Version 7 UUIDs keep the
// creation-time ordering of timestamp ids without colliding when several
// records are created within the same millisecond.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
