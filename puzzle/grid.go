/*
Package puzzle models the multi-agent grid puzzle: a static board of
free cells, obstacles, one color tile, one door switch and door-blocked
cells, plus the immutable per-agent start/goal/target-color data.

It also defines the dynamic search state (agent positions, acquired
colors, door flag) and the action model that produces successor states.
The planner package runs its searches on top of these types.
*/
package puzzle

import (
	"errors"
	"fmt"
)

const maxGridDimension = 20

// CellKind tags what occupies a static cell. The values are internal
// tags only; no arithmetic is ever performed on them.
type CellKind int

const (
	// Free is an ordinary passable cell.
	Free CellKind = iota
	// Obstacle is never passable.
	Obstacle
	// ColorTile grants an agent its target color when stepped on.
	ColorTile
	// DoorSwitch is the cell from which the door can be activated.
	DoorSwitch
	// DoorBlocked is impassable until the door has been opened.
	DoorBlocked
)

// Position is a cell coordinate. X grows to the right, Y grows down.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// ManhattanTo returns the Manhattan distance to another position.
func (p Position) ManhattanTo(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Color is an agent color. The zero value means no color acquired yet.
type Color string

// NoColor marks an agent that has not reached the color tile yet.
const NoColor Color = ""

// AgentSpec is the static description of one agent.
type AgentSpec struct {
	Start       Position
	Goal        Position
	TargetColor Color
}

// Grid is the immutable static description of the board. Build one with
// New; a constructed Grid is never mutated, so it can be shared freely
// between concurrent solver runs.
type Grid struct {
	width      int
	height     int
	kinds      map[Position]CellKind
	colorTile  Position
	doorSwitch Position
	agents     []AgentSpec
}

// Config carries everything New needs to build a Grid.
type Config struct {
	Width       int
	Height      int
	Obstacles   []Position
	DoorBlocked []Position
	ColorTile   Position
	DoorSwitch  Position
	Agents      []AgentSpec
}

// New validates the configuration and builds an immutable Grid.
// Malformed configurations (overlapping special cells, duplicate agent
// starts, goals on obstacles, ...) fail here, never during search.
func New(cfg Config) (*Grid, error) {
	if min(cfg.Width, cfg.Height) <= 0 || max(cfg.Width, cfg.Height) > maxGridDimension {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	g := &Grid{
		width:      cfg.Width,
		height:     cfg.Height,
		kinds:      make(map[Position]CellKind),
		colorTile:  cfg.ColorTile,
		doorSwitch: cfg.DoorSwitch,
	}

	place := func(p Position, kind CellKind) error {
		if !g.inBounds(p.X, p.Y) {
			return fmt.Errorf("cell (%d,%d) outside %dx%d grid", p.X, p.Y, g.width, g.height)
		}
		if existing, taken := g.kinds[p]; taken && existing != kind {
			return fmt.Errorf("conflicting kinds for cell (%d,%d)", p.X, p.Y)
		}
		g.kinds[p] = kind
		return nil
	}

	for _, p := range cfg.Obstacles {
		if err := place(p, Obstacle); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.DoorBlocked {
		if err := place(p, DoorBlocked); err != nil {
			return nil, err
		}
	}
	if err := place(cfg.ColorTile, ColorTile); err != nil {
		return nil, err
	}
	if err := place(cfg.DoorSwitch, DoorSwitch); err != nil {
		return nil, err
	}
	if cfg.ColorTile == cfg.DoorSwitch {
		return nil, errors.New("color tile and door switch share a cell")
	}

	if len(cfg.Agents) == 0 {
		return nil, errors.New("puzzle needs at least one agent")
	}
	starts := make(map[Position]struct{}, len(cfg.Agents))
	for idx, a := range cfg.Agents {
		if _, taken := starts[a.Start]; taken {
			return nil, fmt.Errorf("agent %d shares its start cell (%d,%d)", idx, a.Start.X, a.Start.Y)
		}
		starts[a.Start] = struct{}{}

		// An agent cannot begin inside a wall or a closed door.
		if !g.IsPassable(a.Start.X, a.Start.Y, false) {
			return nil, fmt.Errorf("agent %d starts on an impassable cell (%d,%d)", idx, a.Start.X, a.Start.Y)
		}
		// Goals behind the door are fine; goals in walls are not.
		if !g.IsPassable(a.Goal.X, a.Goal.Y, true) {
			return nil, fmt.Errorf("agent %d has an unreachable goal cell (%d,%d)", idx, a.Goal.X, a.Goal.Y)
		}
		if a.TargetColor == NoColor {
			return nil, fmt.Errorf("agent %d has no target color", idx)
		}
	}
	g.agents = append(g.agents, cfg.Agents...)

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// NumAgents returns the number of agents on the board.
func (g *Grid) NumAgents() int { return len(g.agents) }

// Agent returns the static spec of agent i.
func (g *Grid) Agent(i int) AgentSpec { return g.agents[i] }

// ColorTilePos returns the coordinate of the color tile.
func (g *Grid) ColorTilePos() Position { return g.colorTile }

// DoorSwitchPos returns the coordinate of the door switch.
func (g *Grid) DoorSwitchPos() Position { return g.doorSwitch }

// KindAt returns the kind of the cell at (x, y). Out-of-bounds
// coordinates report Obstacle, which keeps them impassable everywhere.
func (g *Grid) KindAt(x, y int) CellKind {
	if !g.inBounds(x, y) {
		return Obstacle
	}
	return g.kinds[Position{X: x, Y: y}]
}

// IsPassable reports whether an agent may stand on (x, y) given the
// current door state. False outside the grid and on obstacles; false on
// door-blocked cells until the door is open.
func (g *Grid) IsPassable(x, y int, doorOpen bool) bool {
	switch g.KindAt(x, y) {
	case Obstacle:
		return false
	case DoorBlocked:
		return doorOpen
	default:
		return true
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}
