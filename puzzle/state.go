package puzzle

import (
	"fmt"
	"strings"
)

// State is one node of the search space: where every agent stands,
// which colors have been acquired, and whether the door is open. States
// are values; Apply builds successors by copying, never by mutating a
// parent. Two invariants hold for every reachable state: no two agents
// share a cell, and DoorOpen never reverts to false.
type State struct {
	Positions []Position `json:"positions"`
	Colors    []Color    `json:"colors"`
	DoorOpen  bool       `json:"door_open"`
}

// InitialState builds the start state from the grid's agent specs. An
// agent whose start cell is the color tile begins already colored,
// matching what the live game would have applied on the first tick.
func InitialState(g *Grid) State {
	s := State{
		Positions: make([]Position, g.NumAgents()),
		Colors:    make([]Color, g.NumAgents()),
	}
	for i := 0; i < g.NumAgents(); i++ {
		spec := g.Agent(i)
		s.Positions[i] = spec.Start
		if spec.Start == g.ColorTilePos() {
			s.Colors[i] = spec.TargetColor
		}
	}
	return s
}

// Key returns the canonical by-value identity of the state, used by
// visited sets and parent maps during search.
func (s State) Key() string {
	var b strings.Builder
	for i, p := range s.Positions {
		fmt.Fprintf(&b, "%d,%d:%s|", p.X, p.Y, s.Colors[i])
	}
	if s.DoorOpen {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	return b.String()
}

// Equals reports whether two states are equal by value.
func (s State) Equals(o State) bool {
	if s.DoorOpen != o.DoorOpen || len(s.Positions) != len(o.Positions) {
		return false
	}
	for i := range s.Positions {
		if s.Positions[i] != o.Positions[i] || s.Colors[i] != o.Colors[i] {
			return false
		}
	}
	return true
}

// IsGoal reports whether every agent stands on its goal cell holding
// its target color. The door state is irrelevant here; it only gates
// passability along the way.
func (s State) IsGoal(g *Grid) bool {
	for i := 0; i < g.NumAgents(); i++ {
		spec := g.Agent(i)
		if s.Positions[i] != spec.Goal || s.Colors[i] != spec.TargetColor {
			return false
		}
	}
	return true
}

// occupied reports whether any agent other than skip stands on p.
func (s State) occupied(p Position, skip int) bool {
	for i, pos := range s.Positions {
		if i != skip && pos == p {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	next := State{
		Positions: make([]Position, len(s.Positions)),
		Colors:    make([]Color, len(s.Colors)),
		DoorOpen:  s.DoorOpen,
	}
	copy(next.Positions, s.Positions)
	copy(next.Colors, s.Colors)
	return next
}
