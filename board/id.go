package board

import "github.com/google/uuid"

// NewID returns a fresh identifier for a placed image.
func NewID() string {
	return uuid.New().String()
}
