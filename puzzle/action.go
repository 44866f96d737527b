package puzzle

// Direction of a single-cell move.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// directions fixes the enumeration order used by Successors. Keeping it
// stable makes every search strategy reproducible.
var directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the coordinate offset of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// ActionKind distinguishes moves from door activations.
type ActionKind string

const (
	// ActionMove moves one agent a single cell.
	ActionMove ActionKind = "move"
	// ActionActivateDoor opens the door; the acting agent must stand on
	// the door switch.
	ActionActivateDoor ActionKind = "activate_door"
)

// Action is one step of a plan. Exactly one agent acts per step.
type Action struct {
	Agent int        `json:"agent"`
	Kind  ActionKind `json:"kind"`
	Dir   Direction  `json:"dir,omitempty"`
}

// Move builds a move action for agent i.
func Move(i int, d Direction) Action {
	return Action{Agent: i, Kind: ActionMove, Dir: d}
}

// ActivateDoor builds a door activation for agent i.
func ActivateDoor(i int) Action {
	return Action{Agent: i, Kind: ActionActivateDoor}
}

// Apply executes the action on a state and returns the successor state.
// Illegal actions return ok=false; they are an expected control-flow
// outcome that prunes the search tree, not an error. The input state is
// never modified.
func Apply(g *Grid, s State, a Action) (State, bool) {
	if a.Agent < 0 || a.Agent >= g.NumAgents() {
		return State{}, false
	}

	switch a.Kind {
	case ActionMove:
		dx, dy := a.Dir.Delta()
		if dx == 0 && dy == 0 {
			return State{}, false
		}
		from := s.Positions[a.Agent]
		to := Position{X: from.X + dx, Y: from.Y + dy}
		if !g.IsPassable(to.X, to.Y, s.DoorOpen) || s.occupied(to, a.Agent) {
			return State{}, false
		}
		next := s.clone()
		next.Positions[a.Agent] = to
		if to == g.ColorTilePos() {
			// Idempotent: re-stepping on the tile when already colored
			// changes nothing.
			next.Colors[a.Agent] = g.Agent(a.Agent).TargetColor
		}
		return next, true

	case ActionActivateDoor:
		if s.Positions[a.Agent] != g.DoorSwitchPos() {
			return State{}, false
		}
		// Always legal on the switch, even with the door already open.
		// The flag is monotonic; it never closes again.
		next := s.clone()
		next.DoorOpen = true
		return next, true
	}

	return State{}, false
}

// Successor pairs an action with the state it produces.
type Successor struct {
	Action Action
	State  State
}

// Successors enumerates every legal action from s, in a fixed order:
// agents in index order, directions up/down/left/right, door activation
// last. This ordering is the branching contract shared by all search
// strategies.
func Successors(g *Grid, s State) []Successor {
	out := make([]Successor, 0, g.NumAgents()*5)
	for i := 0; i < g.NumAgents(); i++ {
		for _, d := range directions {
			act := Move(i, d)
			if next, ok := Apply(g, s, act); ok {
				out = append(out, Successor{Action: act, State: next})
			}
		}
		act := ActivateDoor(i)
		if next, ok := Apply(g, s, act); ok {
			out = append(out, Successor{Action: act, State: next})
		}
	}
	return out
}
