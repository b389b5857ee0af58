package entity

import "github.com/google/uuid"

// IDGenerator is the injected identifier strategy; production uses random
// UUIDs, tests may substitute a deterministic sequence.
type IDGenerator interface {
	NewID() uuid.UUID
}

// UUIDGenerator generates random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
