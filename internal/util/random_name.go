package util

import (
	"fmt"

	"goldenflower-server/internal/rng"
)

var adjectives = []string{
	"Golden", "Silver", "Jade", "Crimson", "Lucky", "Bold", "Quiet", "Sly", "Patient", "Reckless", "Steady",
	"Blind", "Sharp", "Lazy", "Fierce", "Gentle", "Wandering", "Dancing", "Laughing", "Grinning", "Sleepy",
	"Hidden", "Rising", "Falling", "Drifting", "Thunder", "Misty", "Windy",
}

var nouns = []string{
	"Lotus", "Peony", "Orchid", "Plum", "Chrysanthemum", "Bamboo", "Crane", "Tiger", "Dragon", "Phoenix",
	"Tortoise", "Carp", "Panda", "Monkey", "Ox", "Rabbit", "Horse", "Goat", "Rooster", "Dog", "Pig", "Rat",
	"Snake", "Fox", "Magpie", "Sparrow",
}

var random rng.Generator = rng.Crypto{}

// GetRandomName returns a random name by combining an adjective with a noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}

// GetRandomNames returns n distinct random names
// n must not exceed the number of possible names
func GetRandomNames(n int) []string {
	if limit := len(adjectives) * len(nouns); n > limit {
		n = limit
	}

	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := GetRandomName()
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
