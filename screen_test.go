package universe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextScreen(t *testing.T) {
	tests := []struct {
		from   Screen
		action Action
		to     Screen
	}{
		{ScreenBouquet, ActionOpenLetter, ScreenLetter},
		{ScreenLetter, ActionSeeUniverse, ScreenUniverse},
		{ScreenUniverse, ActionBackToLetter, ScreenLetter},
	}
	for _, tt := range tests {
		to, err := NextScreen(tt.from, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.to, to)
	}
}

func TestNextScreen_Invalid(t *testing.T) {
	valid := 0
	for _, from := range screens {
		for _, action := range []Action{ActionOpenLetter, ActionSeeUniverse, ActionBackToLetter} {
			to, err := NextScreen(from, action)
			if err == nil {
				valid++
				continue
			}
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			assert.Equal(t, from, to)
		}
	}
	assert.Equal(t, 3, valid)
}

func TestScreenStrings(t *testing.T) {
	assert.Equal(t, "bouquet", ScreenBouquet.String())
	assert.Equal(t, "universe", ScreenUniverse.String())
	assert.Equal(t, "Screen(9)", Screen(9).String())
	assert.Equal(t, "back-to-letter", ActionBackToLetter.String())
}
