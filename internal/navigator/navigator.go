// Package navigator drives the exploration of the mansion one player command at a time.
package navigator

import (
	"context"
	"log/slog"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/suspects"
)

var ErrExited = errors.NewSentinel("exploration already finished")

// Confirmer asks the player a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}

// State is either active, with a current room, or exited.
type State int

const (
	StateActive State = iota
	StateExited
)

// Status is what the game shows before every prompt.
type Status struct {
	Room       string
	Left       string
	Right      string
	Collected  int
	AllVisited bool
}

// Navigator is the exploration state machine. It is not safe for concurrent use; every transition runs to
// completion before the next command is read.
type Navigator struct {
	rooms     *mansion.Map
	index     *suspects.Index
	clues     *ledger.Ledger
	confirmer Confirmer
	policy    DeadEndPolicy
	logger    *slog.Logger

	current mansion.RoomID
	state   State
}

// New starts the exploration in the entry room, which is investigated right away. The returned events
// describe that first investigation.
func New(
	ctx context.Context,
	rooms *mansion.Map,
	index *suspects.Index,
	clues *ledger.Ledger,
	confirmer Confirmer,
	policy DeadEndPolicy,
	logger *slog.Logger,
) (*Navigator, []Event) {
	n := &Navigator{
		rooms:     rooms,
		index:     index,
		clues:     clues,
		confirmer: confirmer,
		policy:    policy,
		logger:    logger.With("source", "Navigator"),
		current:   mansion.NoRoom,
		state:     StateActive,
	}
	return n, n.enter(ctx, rooms.Entry())
}

// State returns the current state.
func (n *Navigator) State() State {
	return n.state
}

// Current returns the room the detective is in. It keeps the last room after the exploration has exited.
func (n *Navigator) Current() mansion.RoomID {
	return n.current
}

// Status summarises the current situation.
func (n *Navigator) Status() Status {
	s := Status{
		Room:       n.rooms.Name(n.current),
		Left:       "",
		Right:      "",
		Collected:  n.clues.Count(),
		AllVisited: n.rooms.AllVisited(),
	}
	if left := n.rooms.Left(n.current); left != mansion.NoRoom {
		s.Left = n.rooms.Name(left)
	}
	if right := n.rooms.Right(n.current); right != mansion.NoRoom {
		s.Right = n.rooms.Name(right)
	}
	return s
}

// Step applies one command. Recoverable problems such as a missing path are reported as events and leave
// the state untouched. Errors come only from the confirmer, or [ErrExited] once the exploration is over.
func (n *Navigator) Step(ctx context.Context, cmd Command) ([]Event, error) {
	if n.state == StateExited {
		return nil, ErrExited
	}

	switch cmd {
	case MoveLeft, MoveRight:
		return n.move(ctx, cmd)
	case Exit:
		ok, err := n.confirmer.Confirm(ctx, Prompt{Kind: PromptExit, Room: ""})
		if err != nil {
			return nil, errors.Wrap(err, "confirm exit")
		}
		if !ok {
			return []Event{{Kind: EventExitDeclined}}, nil
		}
		n.state = StateExited
		n.logger.LogAttrs(ctx, slog.LevelInfo, "exploration finished", slog.Int("clues", n.clues.Count()))
		return []Event{{Kind: EventExited}}, nil
	case CommandUnknown:
	}
	return []Event{{Kind: EventInvalidCommand, Command: cmd}}, nil
}

func (n *Navigator) move(ctx context.Context, cmd Command) ([]Event, error) {
	target := n.rooms.Left(n.current)
	if cmd == MoveRight {
		target = n.rooms.Right(n.current)
	}
	if target == mansion.NoRoom {
		return []Event{{Kind: EventNoPath, Room: n.rooms.Name(n.current), Command: cmd}}, nil
	}

	if n.rooms.Visited(target) {
		name := n.rooms.Name(target)
		ok, err := n.confirmer.Confirm(ctx, Prompt{Kind: PromptRevisit, Room: name})
		if err != nil {
			return nil, errors.Wrap(err, "confirm revisit", slog.String("room", name))
		}
		if !ok {
			return []Event{{Kind: EventRevisitDeclined, Room: name}}, nil
		}
	}

	events := n.enter(ctx, target)
	if !n.rooms.IsDeadEnd(target) {
		return events, nil
	}

	events = append(events, Event{Kind: EventDeadEnd, Room: n.rooms.Name(target)})
	if n.policy == DeadEndTerminate {
		n.state = StateExited
		events = append(events, Event{Kind: EventExited})
	} else {
		n.current = n.rooms.Entry()
		events = append(events, Event{Kind: EventReturnedToEntry, Room: n.rooms.Name(n.current)})
	}
	n.logger.LogAttrs(ctx, slog.LevelDebug, "dead end",
		slog.String("room", n.rooms.Name(target)), slog.String("policy", string(n.policy)))
	return events, nil
}

// enter makes id the current room and investigates it.
func (n *Navigator) enter(ctx context.Context, id mansion.RoomID) []Event {
	n.current = id
	n.rooms.MarkVisited(id)
	name := n.rooms.Name(id)
	events := []Event{{Kind: EventEntered, Room: name}}

	clue, ok := n.rooms.ConsumeClue(id)
	if !ok {
		return append(events, Event{Kind: EventNothingNew, Room: name})
	}

	suspect := n.index.Lookup(clue)
	n.clues.Insert(clue)
	n.logger.LogAttrs(ctx, slog.LevelDebug, "clue collected",
		slog.String("room", name), slog.String("clue", clue), slog.String("suspect", suspect))
	return append(events, Event{Kind: EventClueFound, Room: name, Clue: clue, Suspect: suspect})
}
