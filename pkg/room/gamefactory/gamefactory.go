package gamefactory

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
)

// DefaultGame is the name of the game a table plays unless it asks for another
const DefaultGame = "golden-flower"

var factories = map[string]GameFactory{
	DefaultGame:           goldenFlowerFactory{},
	"golden-flower-quick": goldenFlowerFactory{quick: true},
}

// GameFactory is a factory for creating games from the options a client sent
type GameFactory interface {
	CreateGame(logger logrus.FieldLogger, seats []goldenflower.SeatConfig, defaults goldenflower.Options, additionalData playable.AdditionalData) (*goldenflower.Game, error)
	Details(defaults goldenflower.Options, additionalData playable.AdditionalData) (name string, ante int, err error)
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}
