package goldenflower

import (
	"goldenflower-server/pkg/deck"
	"goldenflower-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	Participants   []*GameStateParticipant `json:"participants"`
	Stage          string                  `json:"stage"`
	HandNumber     int                     `json:"handNumber"`
	Pot            int                     `json:"pot"`
	BaseBet        int                     `json:"baseBet"`
	Round          int                     `json:"round"`
	RoundCap       int                     `json:"roundCap"`
	PotCap         int                     `json:"potCap"`
	Ante           int                     `json:"ante"`
	ActivePlayerID int64                   `json:"activePlayerId,omitempty"`
	// Summary is only populated once the hand is settled
	Summary *HandSummary `json:"summary,omitempty"`
}

// GameStateParticipant is the state of an individual participant
type GameStateParticipant struct {
	SeatView
	IsWinner    bool `json:"isWinner"`
	CardsInHand int  `json:"cardsInHand"`
	// Hand and HandResult are only shown after the hand is settled
	Hand       []*deck.Card `json:"hand,omitempty"`
	HandResult *HandResult  `json:"handResult,omitempty"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	Balance   int        `json:"balance"`
	// Hand is only shown once the player has looked at it, or once the hand is settled
	Hand       []*deck.Card `json:"hand"`
	HandResult *HandResult  `json:"handResult,omitempty"`
	// CanAct is true if it is the player's turn
	CanAct     bool `json:"canAct"`
	CallCost   int  `json:"callCost"`
	DuelCost   int  `json:"duelCost"`
	CanCompare bool `json:"canCompare"`
	// MinRaiseCost is what raising by one ante would cost
	MinRaiseCost int  `json:"minRaiseCost"`
	CanRaise     bool `json:"canRaise"`
}

func (g *Game) seatView(p *Participant) SeatView {
	return SeatView{
		PlayerID:   p.PlayerID,
		Name:       p.Name,
		Kind:       p.Kind,
		Balance:    p.balance,
		Seen:       p.seen,
		Folded:     p.folded,
		SittingOut: p.sittingOut,
	}
}

func (g *Game) seatViews() []SeatView {
	views := make([]SeatView, len(g.participants))
	for i, p := range g.participants {
		views[i] = g.seatView(p)
	}

	return views
}

// observation builds what a DecisionProvider gets to see for the seat
func (g *Game) observation(p *Participant) Observation {
	obs := Observation{
		PlayerID: p.PlayerID,
		Seats:    g.seatViews(),
		Balance:  p.balance,
		Seen:     p.seen,
		Pot:      g.ledger.Pot(),
		BaseBet:  g.ledger.BaseBet(),
		CallCost: g.ledger.CallCost(p),
		Round:    g.round,
		RoundCap: g.options.RoundCap,
		Ante:     g.options.Ante,
		PotCap:   g.options.PotCap,
	}

	if p.seen {
		result := AnalyzeHand(p.hand)
		obs.Hand = &result
		obs.Cards = p.Hand()
	}

	return obs
}

func (g *Game) getGameState() *GameState {
	settled := g.stage == StageSettled
	participants := make([]*GameStateParticipant, len(g.participants))
	for i, p := range g.participants {
		gsp := &GameStateParticipant{
			SeatView:    g.seatView(p),
			IsWinner:    p.winner,
			CardsInHand: len(p.hand),
		}

		if settled && len(p.hand) > 0 {
			result := AnalyzeHand(p.hand)
			gsp.Hand = p.Hand()
			gsp.HandResult = &result
		}

		participants[i] = gsp
	}

	state := &GameState{
		Participants: participants,
		Stage:        g.stage.String(),
		HandNumber:   g.handNumber,
		Pot:          g.ledger.Pot(),
		BaseBet:      g.ledger.BaseBet(),
		Round:        g.round,
		RoundCap:     g.options.RoundCap,
		PotCap:       g.options.PotCap,
		Ante:         g.options.Ante,
		Summary:      g.summary,
	}

	if active := g.Active(); active != nil {
		state.ActivePlayerID = active.PlayerID
	}

	return state
}

// GetPlayerState returns the state for the given player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	participant, ok := g.idToParticipant[playerID]
	if !ok {
		// Viewer who is not playing
		participant = &Participant{
			PlayerID: playerID,
		}
	}

	response := &Response{
		GameState: g.getGameState(),
		Balance:   participant.balance,
		Hand:      []*deck.Card{},
	}

	if ok && (participant.seen || g.stage == StageSettled) && len(participant.hand) > 0 {
		result := AnalyzeHand(participant.hand)
		response.Hand = participant.Hand()
		response.HandResult = &result
	}

	if ok && g.Active() == participant {
		response.CanAct = true
		response.CallCost = g.ledger.CallCost(participant)
		response.DuelCost = response.CallCost
		response.CanCompare = participant.balance >= response.DuelCost && g.duelTarget(g.activeIndex) != nil
		response.MinRaiseCost = g.ledger.RaiseCost(participant, g.options.Ante)
		response.CanRaise = participant.balance >= response.MinRaiseCost
	}

	return &playable.Response{
		Key:   "game",
		Value: "golden-flower",
		Data:  response,
	}, nil
}
