// Package mansion holds the fixed room tree the detective explores.
//
// Rooms live in an arena and are addressed by stable [RoomID] indices, so each parent owns its children
// by index and the whole tree can be released in one post-order pass.
package mansion

import (
	"log/slog"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/models"
)

// RoomID addresses a room inside a [Map].
type RoomID int

// NoRoom marks an absent child.
const NoRoom RoomID = -1

var ErrInvalidLayout = errors.NewSentinel("invalid mansion layout")

type room struct {
	name    string
	clue    string
	left    RoomID
	right   RoomID
	visited bool
}

// Map is the mansion. The topology never changes after construction; only the visited flags and the clues
// are mutated during play.
type Map struct {
	rooms []room
	entry RoomID
}

// Build constructs the compiled-in mansion. The layout is part of the program, so a malformed one is fatal.
func Build() *Map {
	c := models.MansionCase()
	m, err := New(c.Entry, c.Rooms)
	if err != nil {
		panic(err)
	}
	return m
}

// New builds a map from a layout and validates that it forms a single tree rooted at entry.
func New(entry string, specs []models.RoomSpec) (*Map, error) {
	ids := make(map[string]RoomID, len(specs))
	rooms := make([]room, len(specs))
	for i, spec := range specs {
		if _, dup := ids[spec.Name]; dup {
			return nil, errors.Wrap(ErrInvalidLayout, "duplicate room", slog.String("room", spec.Name))
		}
		ids[spec.Name] = RoomID(i)
		rooms[i] = room{name: spec.Name, clue: spec.Clue, left: NoRoom, right: NoRoom, visited: false}
	}

	entryID, ok := ids[entry]
	if !ok {
		return nil, errors.Wrap(ErrInvalidLayout, "unknown entry room", slog.String("room", entry))
	}

	resolve := func(name string) (RoomID, error) {
		if name == "" {
			return NoRoom, nil
		}
		id, found := ids[name]
		if !found {
			return NoRoom, errors.Wrap(ErrInvalidLayout, "unknown child room", slog.String("room", name))
		}
		return id, nil
	}

	parents := make([]int, len(specs))
	for i, spec := range specs {
		left, err := resolve(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := resolve(spec.Right)
		if err != nil {
			return nil, err
		}
		for _, child := range []RoomID{left, right} {
			if child == NoRoom {
				continue
			}
			parents[child]++
			if parents[child] > 1 || child == entryID {
				return nil, errors.Wrap(ErrInvalidLayout, "room has more than one parent",
					slog.String("room", rooms[child].name))
			}
		}
		rooms[i].left, rooms[i].right = left, right
	}

	m := &Map{rooms: rooms, entry: entryID}
	if reached := m.countReachable(); reached != len(rooms) {
		return nil, errors.Wrap(ErrInvalidLayout, "rooms unreachable from entry",
			slog.Int("reachable", reached), slog.Int("rooms", len(rooms)))
	}
	return m, nil
}

func (m *Map) countReachable() int {
	seen := make([]bool, len(m.rooms))
	stack := []RoomID{m.entry}
	count := 0
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == NoRoom || seen[id] {
			continue
		}
		seen[id] = true
		count++
		stack = append(stack, m.rooms[id].left, m.rooms[id].right)
	}
	return count
}

// Entry returns the room where every session starts.
func (m *Map) Entry() RoomID { return m.entry }

// Len returns the number of rooms.
func (m *Map) Len() int { return len(m.rooms) }

func (m *Map) Name(id RoomID) string  { return m.rooms[id].name }
func (m *Map) Left(id RoomID) RoomID  { return m.rooms[id].left }
func (m *Map) Right(id RoomID) RoomID { return m.rooms[id].right }
func (m *Map) Visited(id RoomID) bool { return m.rooms[id].visited }

// Clue peeks at the uncollected clue without consuming it. Empty when there is none.
func (m *Map) Clue(id RoomID) string { return m.rooms[id].clue }

// HasClue reports whether the room still holds an uncollected clue.
func (m *Map) HasClue(id RoomID) bool { return m.rooms[id].clue != "" }

// Find returns the room with the given name.
func (m *Map) Find(name string) (RoomID, bool) {
	for i := range m.rooms {
		if m.rooms[i].name == name {
			return RoomID(i), true
		}
	}
	return NoRoom, false
}

// IsDeadEnd is true when the room has no children.
func (m *Map) IsDeadEnd(id RoomID) bool {
	return m.rooms[id].left == NoRoom && m.rooms[id].right == NoRoom
}

// MarkVisited flags the room as visited. Marking it again is a no-op.
func (m *Map) MarkVisited(id RoomID) {
	m.rooms[id].visited = true
}

// ConsumeClue hands out the room's clue and clears it. Only the first call for a room returns a clue.
func (m *Map) ConsumeClue(id RoomID) (string, bool) {
	clue := m.rooms[id].clue
	if clue == "" {
		return "", false
	}
	m.rooms[id].clue = ""
	return clue, true
}

// AllVisited reports whether every room of the mansion has been visited.
func (m *Map) AllVisited() bool {
	return m.allVisited(m.entry)
}

func (m *Map) allVisited(id RoomID) bool {
	if id == NoRoom {
		return true
	}
	r := m.rooms[id]
	return r.visited && m.allVisited(r.left) && m.allVisited(r.right)
}

// Depth is the longest path, in moves, from the entry to a dead end.
func (m *Map) Depth() int {
	return m.depth(m.entry)
}

func (m *Map) depth(id RoomID) int {
	r := m.rooms[id]
	deepest := -1
	for _, child := range []RoomID{r.left, r.right} {
		if child != NoRoom {
			deepest = max(deepest, m.depth(child))
		}
	}
	return deepest + 1
}

// Walk visits the rooms in pre-order, left before right, until fn returns false.
func (m *Map) Walk(fn func(id RoomID, depth int) bool) {
	m.walk(m.entry, 0, fn)
}

func (m *Map) walk(id RoomID, depth int, fn func(RoomID, int) bool) bool {
	if id == NoRoom {
		return true
	}
	if !fn(id, depth) {
		return false
	}
	return m.walk(m.rooms[id].left, depth+1, fn) && m.walk(m.rooms[id].right, depth+1, fn)
}

// Release tears the tree down children first and returns how many rooms were released. The map must not
// be used afterwards.
func (m *Map) Release() int {
	if m.rooms == nil {
		return 0
	}
	released := m.release(m.entry)
	m.rooms = nil
	m.entry = NoRoom
	return released
}

func (m *Map) release(id RoomID) int {
	if id == NoRoom {
		return 0
	}
	r := &m.rooms[id]
	released := m.release(r.left) + m.release(r.right)
	*r = room{name: "", clue: "", left: NoRoom, right: NoRoom, visited: false}
	return released + 1
}
