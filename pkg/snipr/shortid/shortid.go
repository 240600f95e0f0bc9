// Package shortid produces fixed-length, URL-safe random identifiers and
// checks candidates against the link store before handing them out.
package shortid

import (
	"errors"
	"math/rand"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	// DefaultLength matches the 7-character ids of the public URL space.
	DefaultLength = 7

	// maxAttempts bounds the collision retry loop. At 64^7 ids the chance of
	// five collisions in a row means the store is pathological; fail loudly.
	maxAttempts = 5
)

// ErrIDSpaceExhausted is returned when every candidate collided.
var ErrIDSpaceExhausted = errors.New("short id space exhausted")

// Generator produces candidate short ids. A single generator is shared by
// all request handlers; the global rand source is safe for concurrent use.
type Generator struct {
	length int
}

// New creates a generator for ids of the given length. Non-positive lengths
// fall back to DefaultLength.
func New(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Generate returns one random candidate id.
func (g *Generator) Generate() string {
	b := make([]byte, g.length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// Allocate returns an id that taken reports as unused. The allocator does not
// reserve the id; the store's unique index is the backstop for the window
// between probe and insert, and callers re-enter this loop on a duplicate-key
// insert error.
func (g *Generator) Allocate(taken func(id string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id := g.Generate()
		inUse, err := taken(id)
		if err != nil {
			return "", err
		}
		if !inUse {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}
