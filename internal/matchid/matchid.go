// Package matchid generates identifiers for matches. IDs are UUIDv7 values
// written as 26 lowercase Crockford base32 characters, so they sort by
// creation time and are safe to use in file names.
package matchid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lowercase
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a match ID
const Length = 26

// Generator creates match IDs from a source of random bytes
type Generator struct {
	random io.Reader
}

// NewGenerator creates a generator reading randomness from r. A nil reader
// uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{random: r}
}

// Generate creates a new match ID using crypto/rand
func Generate() string {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		panic("failed to generate match id: " + err.Error())
	}
	return id
}

// Generate creates a new match ID
func (g *Generator) Generate() (string, error) {
	u, err := uuid.NewV7FromReader(g.random)
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return encode(u), nil
}

// encode writes the 128 bits of u as 26 five-bit groups, most significant
// first. The final group carries two zero padding bits.
func encode(u uuid.UUID) string {
	var sb strings.Builder
	sb.Grow(Length)

	var acc uint16
	bits := 0
	for _, b := range u {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			sb.WriteByte(alphabet[(acc>>bits)&0x1f])
		}
	}
	if bits > 0 {
		sb.WriteByte(alphabet[(acc<<(5-bits))&0x1f])
	}
	return sb.String()
}

// Validate checks that id has the shape of a match ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match id must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %q at position %d", c, i)
		}
	}
	return nil
}
