package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// EncodedLength is the length of an encoded ID at the API boundary.
const EncodedLength = 32

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, EncodedLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// IsValid reports whether s is syntactically a well-formed ID. It says
// nothing about whether the ID resolves to a stored entity.
func IsValid(s string) bool {
	if len(s) != EncodedLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
