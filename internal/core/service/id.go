package service

import "github.com/google/uuid"

// newID returns the random identifier stored in every document's id field.
func newID() string {
	return uuid.NewString()
}
