package domain

import "github.com/Jellal-17/puzzle-planner-api/puzzle"

// SolveResult is the outcome of planning a puzzle. An unsolvable puzzle
// is a normal result, not an error: Solvable is false and Plan is nil.
type SolveResult struct {
	Strategy string          `json:"strategy"`
	Solvable bool            `json:"solvable"`
	Plan     []puzzle.Action `json:"plan"`
}

// ReplayStep is one tick of a plan replay: the action taken and the
// state it produced.
type ReplayStep struct {
	Step   int           `json:"step"`
	Action puzzle.Action `json:"action"`
	State  puzzle.State  `json:"state"`
	Goal   bool          `json:"goal"`
}
