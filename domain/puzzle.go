// Package domain holds the persisted puzzle model and the result types
// exchanged between the service layer and the API.
package domain

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrPuzzleNotFound reports a lookup for an unknown puzzle ID.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// AgentDef is the stored form of one agent: start, goal and target
// color. Coordinates are [x, y] pairs.
type AgentDef struct {
	Start [2]int `bson:"start" json:"start" yaml:"start"`
	Goal  [2]int `bson:"goal" json:"goal" yaml:"goal"`
	Color string `bson:"color" json:"color" yaml:"color"`
}

// Puzzle is a stored puzzle definition: a symbol-row board plus agent
// specs. The rows use the board symbols of puzzle.ParseRows ('.', '#',
// 'C', 'S', 'D').
type Puzzle struct {
	ID        uuid.UUID  `bson:"_id" json:"id" yaml:"-"`
	Name      string     `bson:"name" json:"name" yaml:"name"`
	Rows      []string   `bson:"rows" json:"rows" yaml:"rows"`
	Agents    []AgentDef `bson:"agents" json:"agents" yaml:"agents"`
	CreatedAt time.Time  `bson:"createdAt" json:"created_at" yaml:"-"`
}

// Grid builds the immutable planning-core grid from the stored
// definition, validating it in the process.
func (p *Puzzle) Grid() (*puzzle.Grid, error) {
	agents := make([]puzzle.AgentSpec, 0, len(p.Agents))
	for _, a := range p.Agents {
		agents = append(agents, puzzle.AgentSpec{
			Start:       puzzle.Position{X: a.Start[0], Y: a.Start[1]},
			Goal:        puzzle.Position{X: a.Goal[0], Y: a.Goal[1]},
			TargetColor: puzzle.Color(a.Color),
		})
	}
	return puzzle.ParseRows(p.Rows, agents)
}

// ParsePuzzleYAML decodes a YAML puzzle definition and validates it.
// The ID is left unset; callers assign one before saving.
func ParsePuzzleYAML(data []byte) (*Puzzle, error) {
	var p Puzzle
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing puzzle definition: %w", err)
	}
	if _, err := p.Grid(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPuzzleFile reads and parses a YAML puzzle file.
func LoadPuzzleFile(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	return ParsePuzzleYAML(data)
}
