package goldenflower

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	for _, want := range allowedActions {
		got, err := ActionFromString(string(want))
		a.NoError(err)
		a.Equal(want, got)
	}

	got, err := ActionFromString("ALLIN")
	a.NoError(err)
	a.Equal(ActionAllIn, got)

	got, err = ActionFromString("check")
	a.Equal(Action(""), got)
	a.True(errors.Is(err, ErrUnknownAction))
	a.EqualError(err, "unknown action: check")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "See Cards", ActionSeeCards.String())
	assert.Equal(t, "All In", ActionAllIn.String())
	assert.Equal(t, "Compare", ActionCompare.String())
	assert.Equal(t, "bogus", Action("bogus").String())
}
