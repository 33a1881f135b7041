package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"goldenflower-server/internal/util"
	"goldenflower-server/pkg/playable/goldenflower"
)

func reset() {
	config = Config{}
}

func TestInstance(t *testing.T) {
	reset()
	defer reset()
	defer util.SetEnv("GF_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("GF_GAME_ROUND_CAP", "7")()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Host)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(20, cfg.Game.Ante)
	a.Equal(2000, cfg.Game.StartingChips)
	a.Equal(4, cfg.Game.AutomatedSeats)
	a.Equal("hard", cfg.Game.Difficulty)
	a.Equal(7, cfg.Game.RoundCap)

	// values missing from the file keep their defaults
	a.Equal(1000, cfg.Game.PotCap)
	a.Equal(1200, cfg.Game.TickIntervalMS)

	// ensure that it's only loaded once
	_ = os.Setenv("GF_GAME_ROUND_CAP", "8")
	// ensure we aren't using a pointer
	cfg.Game.RoundCap = 99
	cfg = Instance()
	a.Equal(7, cfg.Game.RoundCap)
}

func TestLoad_defaults(t *testing.T) {
	reset()
	defer reset()
	defer util.SetEnv("GF_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().Game, cfg.Game)
	assert.Equal(t, ":5000", cfg.Host)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_dotenv(t *testing.T) {
	reset()
	defer reset()
	defer util.SetEnv("GF_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("GF_ENV_FILE", "testdata/test.env")()
	defer util.SetEnv("GF_LOG_LEVEL", "error")()
	defer func() {
		_ = os.Unsetenv("GF_GAME_POT_CAP")
	}()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 1500, cfg.Game.PotCap)
	// the environment wins over the .env file
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_badFile(t *testing.T) {
	reset()
	defer reset()
	defer util.SetEnv("GF_CONFIG_FILE", "testdata/test.env")()

	assert.Error(t, Load())
}

func TestLoad_badEnv(t *testing.T) {
	reset()
	defer reset()
	defer util.SetEnv("GF_CONFIG_FILE", "testdata/missing.yaml")()
	defer util.SetEnv("GF_GAME_ANTE", "ten")()

	assert.Error(t, Load())
}

func TestConfig_GameOptions(t *testing.T) {
	assert.Equal(t, goldenflower.DefaultOptions(), DefaultConfig().GameOptions())

	cfg := DefaultConfig()
	cfg.Game.Ante = 5
	cfg.Game.DecisionTimeoutMS = 250
	opts := cfg.GameOptions()
	assert.Equal(t, 5, opts.Ante)
	assert.Equal(t, time.Millisecond*250, opts.DecisionTimeout)
	assert.Equal(t, time.Millisecond*1200, opts.TickInterval)
}
