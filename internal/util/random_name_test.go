package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower-server/internal/rng"
)

type sequence struct {
	next int
}

func (s *sequence) Intn(n int) int {
	v := s.next % n
	s.next++
	return v
}

func withRandom(gen rng.Generator) func() {
	orig := random
	random = gen
	return func() {
		random = orig
	}
}

func TestGetRandomName(t *testing.T) {
	defer withRandom(&sequence{})()

	assert.Equal(t, "Golden Peony", GetRandomName())
	assert.Equal(t, "Jade Plum", GetRandomName())
}

func TestGetRandomName_crypto(t *testing.T) {
	parts := strings.Split(GetRandomName(), " ")
	assert.Len(t, parts, 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, nouns, parts[1])
}

func TestGetRandomNames(t *testing.T) {
	defer withRandom(rng.Seeded(1))()

	names := GetRandomNames(5)
	assert.Len(t, names, 5)

	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}
