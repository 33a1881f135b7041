// Package bot contains local decision providers for automated seats
package bot

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty controls how well a Heuristic bot plays
type Difficulty string

// difficulties
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ErrUnknownDifficulty is returned for a difficulty that does not exist
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyFromString returns the difficulty, ignoring case
func DifficultyFromString(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(s)); d {
	case Easy, Medium, Hard:
		return d, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
