package pong

import (
	"errors"
	"fmt"
)

// State is the match lifecycle state.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Command is an external request that moves the state machine.
type Command uint8

const (
	CommandTogglePause Command = iota + 1
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandTogglePause:
		return "toggle-pause"
	case CommandQuit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// ErrInvalidTransition is returned when a command does not apply to a state.
var ErrInvalidTransition = errors.New("pong: invalid state transition")

// Transition returns the state reached by applying c to s.
func Transition(s State, c Command) (State, error) {
	switch s {
	case StateRunning:
		switch c {
		case CommandTogglePause:
			return StatePaused, nil
		case CommandQuit:
			return StateQuit, nil
		}
	case StatePaused:
		switch c {
		case CommandTogglePause:
			return StateRunning, nil
		case CommandQuit:
			return StateQuit, nil
		}
	}
	return s, fmt.Errorf("%w: %s while %s", ErrInvalidTransition, c, s)
}
