package room

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"goldenflower-server/internal/util"
	"goldenflower-server/pkg/bot"
	"goldenflower-server/pkg/playable"
	"goldenflower-server/pkg/playable/goldenflower"
	"goldenflower-server/pkg/room/gamefactory"
)

// HumanPlayerID is the player ID of the human seat at every table
// Automated seats follow it in order.
const HumanPlayerID int64 = 1

// TableConfig describes a table to open
type TableConfig struct {
	Name           string `json:"name"`
	PlayerName     string `json:"playerName"`
	AutomatedSeats int    `json:"automatedSeats"`
	StartingChips  int    `json:"startingChips"`
	Difficulty     string `json:"difficulty"`
	// Game is the name of the game factory, defaults to golden-flower
	Game string `json:"game"`
	// AutoDealMS deals the next hand this long after a hand is settled, 0 waits for the player
	AutoDealMS int                     `json:"autoDealMs"`
	Options    playable.AdditionalData `json:"options"`

	// Providers replaces the bots of the automated seats, one per seat
	Providers []goldenflower.DecisionProvider `json:"-"`
}

// Validate checks the table can be opened
func (c TableConfig) Validate() error {
	if c.AutomatedSeats < 1 || c.AutomatedSeats > goldenflower.MaxSeats-1 {
		return goldenflower.ConfigurationError{
			Reason: fmt.Sprintf("expected between 1 and %d automated seats, got %d", goldenflower.MaxSeats-1, c.AutomatedSeats),
		}
	}

	if c.StartingChips <= 0 {
		return goldenflower.ConfigurationError{Reason: fmt.Sprintf("starting chips must be positive, got %d", c.StartingChips)}
	}

	if c.AutoDealMS < 0 {
		return goldenflower.ConfigurationError{Reason: "auto deal delay cannot be negative"}
	}

	if c.Providers != nil {
		if len(c.Providers) != c.AutomatedSeats {
			return goldenflower.ConfigurationError{
				Reason: fmt.Sprintf("expected %d providers, got %d", c.AutomatedSeats, len(c.Providers)),
			}
		}
	} else if _, err := bot.DifficultyFromString(c.Difficulty); err != nil {
		return goldenflower.ConfigurationError{Reason: "invalid difficulty", Err: err}
	}

	if _, err := gamefactory.Get(c.game()); err != nil {
		return goldenflower.ConfigurationError{Reason: "invalid game", Err: err}
	}

	return nil
}

func (c TableConfig) game() string {
	if c.Game == "" {
		return gamefactory.DefaultGame
	}

	return c.Game
}

// seats returns the human seat followed by the automated seats
// Must be called on a validated config
func (c TableConfig) seats() []goldenflower.SeatConfig {
	playerName := c.PlayerName
	if playerName == "" {
		playerName = "You"
	}

	seats := make([]goldenflower.SeatConfig, 0, c.AutomatedSeats+1)
	seats = append(seats, goldenflower.SeatConfig{
		PlayerID: HumanPlayerID,
		Name:     playerName,
		Kind:     goldenflower.KindHuman,
		Chips:    c.StartingChips,
	})

	difficulty, _ := bot.DifficultyFromString(c.Difficulty)
	for i, name := range util.GetRandomNames(c.AutomatedSeats) {
		var provider goldenflower.DecisionProvider
		if c.Providers != nil {
			provider = c.Providers[i]
		} else {
			provider = bot.NewHeuristic(difficulty, nil)
		}

		seats = append(seats, goldenflower.SeatConfig{
			PlayerID: HumanPlayerID + int64(i) + 1,
			Name:     name,
			Kind:     goldenflower.KindAutomated,
			Chips:    c.StartingChips,
			Provider: provider,
		})
	}

	return seats
}

// Table is an open table
type Table struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Game      string    `json:"game"`
	Ante      int       `json:"ante"`
	CreatedAt time.Time `json:"createdAt"`

	config TableConfig
}

func newTable(cfg TableConfig, defaults goldenflower.Options) (*Table, error) {
	factory, err := gamefactory.Get(cfg.game())
	if err != nil {
		return nil, err
	}

	gameName, ante, err := factory.Details(defaults, cfg.Options)
	if err != nil {
		return nil, err
	}

	name := cfg.Name
	if name == "" {
		name = gameName
	}

	return &Table{
		UUID:      uuid.New().String(),
		Name:      name,
		Game:      gameName,
		Ante:      ante,
		CreatedAt: time.Now(),
		config:    cfg,
	}, nil
}

// String returns a traceable identifier for the table
func (t *Table) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.UUID)
}
