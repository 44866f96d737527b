/*
Package planner computes plans for the grid puzzle.

Three interchangeable strategies search the state space defined by the
puzzle package: breadth-first (shortest plan), depth-first (first plan
found) and A* with an admissible heuristic (shortest plan). All three
share the deterministic successor enumeration of puzzle.Successors, so
repeated runs on the same input produce identical plans.
*/
package planner

import (
	"errors"
	"fmt"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
)

// Plan is an ordered action sequence solving a puzzle. An empty plan
// means the start state already satisfied the goal.
type Plan []puzzle.Action

// Strategy selects a search algorithm.
type Strategy string

const (
	BFS   Strategy = "bfs"
	DFS   Strategy = "dfs"
	AStar Strategy = "astar"
)

var (
	// ErrNoSolution reports that the search exhausted the reachable
	// state space without finding a goal state. Callers are expected to
	// handle it as a normal outcome.
	ErrNoSolution = errors.New("no solution found")

	// ErrUnknownStrategy reports an unrecognized strategy selector.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// ParseStrategy maps a selector string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case BFS, DFS, AStar:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Solve searches for a plan from start using the given strategy.
// It returns ErrNoSolution when the goal is unreachable and
// ErrUnknownStrategy for a bad selector; it never fails on illegal
// actions, which are filtered during expansion.
func Solve(g *puzzle.Grid, start puzzle.State, strategy Strategy) (Plan, error) {
	switch strategy {
	case BFS:
		return solveBFS(g, start)
	case DFS:
		return solveDFS(g, start)
	case AStar:
		return solveAStar(g, start)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// link records how a state was first reached, for plan reconstruction.
type link struct {
	parent string
	action puzzle.Action
}

// reconstruct walks the parent map from the goal key back to the start
// key and returns the actions in execution order.
func reconstruct(parents map[string]link, startKey, goalKey string) Plan {
	var reversed Plan
	for key := goalKey; key != startKey; {
		l := parents[key]
		reversed = append(reversed, l.action)
		key = l.parent
	}

	plan := make(Plan, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		plan = append(plan, reversed[i])
	}
	return plan
}

// maxExpansions bounds a search at the exact size of the state space:
// every agent placement times every color subset times the door flag.
// The visited set keeps searches well under this; the bound is a safety
// valve that turns a logic bug into ErrNoSolution instead of a hang.
func maxExpansions(g *puzzle.Grid) int {
	cells := g.Width() * g.Height()
	bound := 2 // door open or closed
	for i := 0; i < g.NumAgents(); i++ {
		bound *= cells * 2
	}
	return bound
}
