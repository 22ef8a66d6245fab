package navigator

import (
	"github.com/myrjola/detectivequest/internal/errors"
)

// Command is a player intent, already parsed from raw input.
type Command int

const (
	CommandUnknown Command = iota
	MoveLeft
	MoveRight
	Exit
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Exit:
		return "exit"
	case CommandUnknown:
	}
	return "unknown"
}

// DeadEndPolicy decides what happens after the detective walks into a room without exits.
type DeadEndPolicy string

const (
	// DeadEndReturn sends the detective back to the entry room and exploration continues.
	DeadEndReturn DeadEndPolicy = "return"
	// DeadEndTerminate ends the exploration.
	DeadEndTerminate DeadEndPolicy = "terminate"
)

var ErrInvalidPolicy = errors.NewSentinel("invalid dead end policy")

// UnmarshalText lets the policy be read from configuration.
func (p *DeadEndPolicy) UnmarshalText(text []byte) error {
	switch policy := DeadEndPolicy(text); policy {
	case DeadEndReturn, DeadEndTerminate:
		*p = policy
		return nil
	}
	return ErrInvalidPolicy
}

// EventKind tells what happened during a transition.
type EventKind int

const (
	EventEntered EventKind = iota
	EventClueFound
	EventNothingNew
	EventNoPath
	EventRevisitDeclined
	EventDeadEnd
	EventReturnedToEntry
	EventExitDeclined
	EventExited
	EventInvalidCommand
)

var eventNames = [...]string{
	EventEntered:         "entered",
	EventClueFound:       "clue_found",
	EventNothingNew:      "nothing_new",
	EventNoPath:          "no_path",
	EventRevisitDeclined: "revisit_declined",
	EventDeadEnd:         "dead_end",
	EventReturnedToEntry: "returned_to_entry",
	EventExitDeclined:    "exit_declined",
	EventExited:          "exited",
	EventInvalidCommand:  "invalid_command",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a notice produced by a transition. Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Room    string
	Clue    string
	Suspect string
	Command Command
}

// PromptKind is the reason the navigator needs a yes/no answer.
type PromptKind int

const (
	PromptRevisit PromptKind = iota
	PromptExit
)

// Prompt is a yes/no question put to the player. Room is set for PromptRevisit.
type Prompt struct {
	Kind PromptKind
	Room string
}
