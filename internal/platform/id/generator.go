package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Prefixes for league record ids.
const (
	PlayerPrefix = "PLR"
	TeamPrefix   = "TM"
	APIKeyPrefix = "KEY"
)

const digits = 6

var upperBound = big.NewInt(1_000_000)

// Generator creates prefixed record ids such as PLR042137.
type Generator interface {
	NewID(prefix string) (string, error)
}

// RandomGenerator draws ids from crypto/rand.
type RandomGenerator struct{}

// NewRandomGenerator returns a RandomGenerator.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns prefix followed by six random digits.
func (g *RandomGenerator) NewID(prefix string) (string, error) {
	n, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return "", fmt.Errorf("read random number: %w", err)
	}

	return fmt.Sprintf("%s%0*d", prefix, digits, n.Int64()), nil
}
