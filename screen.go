package universe

import (
	"errors"
	"fmt"
)

// Screen is one step of the greeting sequence.
type Screen int

const (
	ScreenBouquet Screen = iota
	ScreenLetter
	ScreenUniverse
)

var screens = []Screen{ScreenBouquet, ScreenLetter, ScreenUniverse}

func (s Screen) String() string {
	switch s {
	case ScreenBouquet:
		return "bouquet"
	case ScreenLetter:
		return "letter"
	case ScreenUniverse:
		return "universe"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Action is a user gesture that moves between screens.
type Action int

const (
	ActionOpenLetter Action = iota
	ActionSeeUniverse
	ActionBackToLetter
)

func (a Action) String() string {
	switch a {
	case ActionOpenLetter:
		return "open-letter"
	case ActionSeeUniverse:
		return "see-universe"
	case ActionBackToLetter:
		return "back-to-letter"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

var ErrInvalidTransition = errors.New("invalid screen transition")

var transitions = map[Screen]map[Action]Screen{
	ScreenBouquet:  {ActionOpenLetter: ScreenLetter},
	ScreenLetter:   {ActionSeeUniverse: ScreenUniverse},
	ScreenUniverse: {ActionBackToLetter: ScreenLetter},
}

// NextScreen returns the screen reached by applying action on from.
func NextScreen(from Screen, action Action) (Screen, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, action, from)
}
