package utils

import "github.com/google/uuid"

// UUIDGenerator produces the X-Request-ID values: random (version 4) UUIDs
// in canonical 36-character form.
type UUIDGenerator struct {
	random func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{random: uuid.NewRandom}
}

// Generate never fails: if the random source errors it falls back to a
// time-ordered version 7 UUID, and to the nil UUID as a last resort.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.random(); err == nil {
		return id.String()
	}
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.Nil.String()
}
