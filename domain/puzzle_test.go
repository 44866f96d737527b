package domain

import (
	"testing"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicYAML = `
name: classic
rows:
  - "...#."
  - "..C#."
  - "...D."
  - "..S#."
  - "...#."
agents:
  - { start: [0, 0], goal: [4, 0], color: red }
  - { start: [0, 2], goal: [4, 2], color: green }
  - { start: [0, 4], goal: [4, 4], color: blue }
`

func TestParsePuzzleYAML(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		p, err := ParsePuzzleYAML([]byte(classicYAML))
		require.NoError(t, err)
		assert.Equal(t, "classic", p.Name)
		assert.Len(t, p.Agents, 3)

		g, err := p.Grid()
		require.NoError(t, err)
		assert.Equal(t, puzzle.Position{X: 2, Y: 1}, g.ColorTilePos())
		assert.Equal(t, puzzle.Position{X: 2, Y: 3}, g.DoorSwitchPos())
		assert.Equal(t, puzzle.Color("green"), g.Agent(1).TargetColor)
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := ParsePuzzleYAML([]byte("rows: ["))
		assert.Error(t, err)
	})

	t.Run("well-formed yaml, invalid board", func(t *testing.T) {
		bad := `
rows:
  - "..."
  - "..."
agents:
  - { start: [0, 0], goal: [2, 0], color: red }
`
		_, err := ParsePuzzleYAML([]byte(bad))
		assert.ErrorContains(t, err, "color tile")
	})
}
