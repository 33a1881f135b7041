package room

import (
	"goldenflower-server/pkg/playable"
)

type clientState struct {
	Table            *Table  `json:"table"`
	ConnectedPlayers []int64 `json:"connectedPlayers"`
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
