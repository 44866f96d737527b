package i

import (
	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/google/uuid"
)

// PuzzleRepo defines the interface for puzzle persistence operations.
type PuzzleRepo interface {
	// Save inserts or updates a puzzle definition.
	// If the puzzle already exists, it updates the record. Otherwise, it creates a new one.
	Save(p *dmn.Puzzle) error

	// ByID retrieves a puzzle by its unique ID.
	// Returns an error if the puzzle is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.Puzzle, error)
}
