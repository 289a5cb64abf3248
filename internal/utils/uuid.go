// Package utils contains small helpers shared across packages.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for submissions and
// bindings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random v4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
