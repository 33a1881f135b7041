package goldenflower

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goldenflower-server/pkg/deck"
)

func playerResponse(t *testing.T, g *Game, playerID int64) *Response {
	t.Helper()
	resp, err := g.GetPlayerState(playerID)
	require.NoError(t, err)
	assert.Equal(t, "game", resp.Key)
	assert.Equal(t, "golden-flower", resp.Value)
	return resp.Data.(*Response)
}

func TestGame_GetPlayerState(t *testing.T) {
	a := assert.New(t)
	g := setupTestGame(t, "14s,14h,14c", "13s,12h,11c")

	state := playerResponse(t, g, 1)
	a.Equal(990, state.Balance)
	a.Empty(state.Hand, "cards stay hidden until the seat looks")
	a.Nil(state.HandResult)
	a.True(state.CanAct)
	a.Equal(10, state.CallCost)
	a.Equal(10, state.DuelCost)
	a.True(state.CanCompare)
	a.Equal(20, state.MinRaiseCost)
	a.True(state.CanRaise)

	gs := state.GameState
	a.Equal("betting", gs.Stage)
	a.Equal(20, gs.Pot)
	a.Equal(10, gs.BaseBet)
	a.Equal(1, gs.Round)
	a.Equal(5, gs.RoundCap)
	a.Equal(1000, gs.PotCap)
	a.Equal(10, gs.Ante)
	a.Equal(int64(1), gs.ActivePlayerID)
	a.Nil(gs.Summary)
	a.Len(gs.Participants, 2)
	for _, p := range gs.Participants {
		a.Equal(3, p.CardsInHand)
		a.Nil(p.Hand)
		a.Nil(p.HandResult)
	}

	other := playerResponse(t, g, 2)
	a.False(other.CanAct)
	a.Equal(0, other.CallCost)

	submit(t, g, 1, ActionSeeCards)
	state = playerResponse(t, g, 1)
	a.Equal("14s,14h,14c", deck.CardsToString(state.Hand))
	a.Equal(Trio, state.HandResult.Type)
	a.True(state.GameState.Participants[0].Seen)
	a.Nil(state.GameState.Participants[0].Hand, "other seats never see a hand before settlement")

	other = playerResponse(t, g, 2)
	a.Empty(other.Hand)
	a.True(other.CanAct)
}

func TestGame_GetPlayerState_settled(t *testing.T) {
	a := assert.New(t)
	g := setupTestGame(t, "14s,14h,14c", "13s,12h,11c")
	submit(t, g, 1, ActionCompare)

	state := playerResponse(t, g, 2)
	a.False(state.CanAct)
	a.Equal("13s,12h,11c", deck.CardsToString(state.Hand))

	gs := state.GameState
	a.Equal("settled", gs.Stage)
	a.Equal(int64(0), gs.ActivePlayerID)
	a.Equal(int64(1), gs.Summary.WinnerID)
	a.True(gs.Participants[0].IsWinner)
	a.Equal("14s,14h,14c", deck.CardsToString(gs.Participants[0].Hand))
	a.Equal(Straight, gs.Participants[1].HandResult.Type)
}

func TestGame_GetPlayerState_spectator(t *testing.T) {
	g := setupTestGame(t, "14s,14h,14c", "13s,12h,11c")

	state := playerResponse(t, g, 99)
	assert.Equal(t, 0, state.Balance)
	assert.Empty(t, state.Hand)
	assert.False(t, state.CanAct)
	assert.Len(t, state.GameState.Participants, 2)
}

func TestGame_GetPlayerState_cannotAfford(t *testing.T) {
	g := setupTestGameWithChips(t, []int{15, 1000}, "14s,14h,14c", "13s,12h,11c")

	state := playerResponse(t, g, 1)
	assert.True(t, state.CanAct)
	assert.False(t, state.CanRaise)
	assert.False(t, state.CanCompare)
}

func TestGame_GetPlayerState_json(t *testing.T) {
	g := setupTestGame(t, "14s,14h,14c", "13s,12h,11c")

	resp, err := g.GetPlayerState(1)
	require.NoError(t, err)

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))

	data := decoded["data"].(map[string]interface{})
	gs := data["gameState"].(map[string]interface{})
	participants := gs["participants"].([]interface{})
	first := participants[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["playerId"])
	assert.Equal(t, "human", first["kind"])
	assert.Nil(t, first["hand"])
	assert.Equal(t, []interface{}{}, data["hand"])
}

func TestGame_observation(t *testing.T) {
	a := assert.New(t)
	g := setupTestGame(t, "14s,14h,14c", "13s,12h,11c", "9s,9h,2c")
	submit(t, g, 1, ActionSeeCards)
	submit(t, g, 2, ActionFold)

	obs := g.observation(g.participants[0])
	a.True(obs.Seen)
	a.Equal(20, obs.CallCost)
	a.Equal(Trio, obs.Hand.Type)
	a.Len(obs.Cards, 3)
	a.Equal(int64(3), obs.Opponents()[0].PlayerID)
	a.Len(obs.Opponents(), 1)

	// the observation is a copy
	obs.Cards[0] = deck.CardFromString("2c")
	a.Equal("14s", deck.CardToString(g.participants[0].hand[0]))
}
