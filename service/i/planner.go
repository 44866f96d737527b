package i

import (
	"context"

	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/google/uuid"
)

// Planner manages puzzle definitions and plans their solutions.
type Planner interface {
	// CreatePuzzle validates and stores a puzzle definition, assigning
	// an ID when the definition has none.
	CreatePuzzle(p *dmn.Puzzle) error

	// PuzzleByID retrieves a stored puzzle definition.
	PuzzleByID(id uuid.UUID) (*dmn.Puzzle, error)

	// Solve plans the puzzle with the given strategy selector. An
	// unsolvable puzzle yields a result with Solvable=false, not an
	// error.
	Solve(ctx context.Context, id uuid.UUID, strategy string) (*dmn.SolveResult, error)

	// Replay plans the puzzle and feeds each action plus its resulting
	// state to emit, one call per step, in execution order. The
	// "random" strategy replays a live random walk instead of a plan.
	Replay(ctx context.Context, id uuid.UUID, strategy string, emit func(dmn.ReplayStep) error) error
}
