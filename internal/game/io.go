package game

import (
	"context"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/navigator"
)

// Tone tells the output how a line should be presented.
type Tone int

const (
	ToneNarrative Tone = iota
	ToneHeading
	ToneClue
	ToneNotice
	ToneWarning
	ToneVerdict
	TonePrompt
)

// Output is the line sink the session writes narrative and notices to.
type Output interface {
	Show(tone Tone, text string)
}

// Input is the line source the session reads commands and answers from. It blocks until a line is
// available and returns io.EOF once the player is gone.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// Pauser waits for the player to acknowledge a notice. It only paces the game.
type Pauser interface {
	Pause(ctx context.Context) error
}

// RevealMode decides whether the ground truth is shown after the verdict.
type RevealMode string

const (
	RevealAsk    RevealMode = "ask"
	RevealAlways RevealMode = "always"
	RevealNever  RevealMode = "never"
)

var ErrInvalidRevealMode = errors.NewSentinel("invalid reveal mode")

// UnmarshalText lets the mode be read from configuration.
func (m *RevealMode) UnmarshalText(text []byte) error {
	switch mode := RevealMode(text); mode {
	case RevealAsk, RevealAlways, RevealNever:
		*m = mode
		return nil
	}
	return ErrInvalidRevealMode
}

// ParseCommand turns a raw line into a navigation command. Portuguese and English tokens are accepted.
func ParseCommand(line string) navigator.Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "e", "esquerda", "l", "left":
		return navigator.MoveLeft
	case "d", "direita", "r", "right":
		return navigator.MoveRight
	case "s", "sair", "exit", "q", "quit":
		return navigator.Exit
	}
	return navigator.CommandUnknown
}

// parseYes reports whether line is an affirmative answer. Anything else counts as no.
func parseYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	}
	return false
}
