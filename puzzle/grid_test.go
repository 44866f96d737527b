package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// classicRows is the board of the original game: an obstacle wall down
// column 3 with a single door cell at (3,2), the color tile at (2,1)
// and the door switch at (2,3).
var classicRows = []string{
	"...#.",
	"..C#.",
	"...D.",
	"..S#.",
	"...#.",
}

var classicAgents = []AgentSpec{
	{Start: Position{X: 0, Y: 0}, Goal: Position{X: 4, Y: 0}, TargetColor: "red"},
	{Start: Position{X: 0, Y: 2}, Goal: Position{X: 4, Y: 2}, TargetColor: "green"},
	{Start: Position{X: 0, Y: 4}, Goal: Position{X: 4, Y: 4}, TargetColor: "blue"},
}

func classicGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := ParseRows(classicRows, classicAgents)
	require.NoError(t, err)
	return g
}

func TestGridValidation(t *testing.T) {
	t.Run("valid classic board", func(t *testing.T) {
		g := classicGrid(t)
		assert.Equal(t, 5, g.Width())
		assert.Equal(t, 5, g.Height())
		assert.Equal(t, 3, g.NumAgents())
		assert.Equal(t, Position{X: 2, Y: 1}, g.ColorTilePos())
		assert.Equal(t, Position{X: 2, Y: 3}, g.DoorSwitchPos())
		assert.Equal(t, DoorBlocked, g.KindAt(3, 2))
		assert.Equal(t, Obstacle, g.KindAt(3, 0))
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		_, err := New(Config{Width: 0, Height: 5, Agents: classicAgents})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate agent starts", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 4, Y: 0}, TargetColor: "red"},
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 4, Y: 2}, TargetColor: "green"},
		}
		_, err := ParseRows(classicRows, agents)
		assert.ErrorContains(t, err, "start cell")
	})

	t.Run("rejects start on an obstacle", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 3, Y: 0}, Goal: Position{X: 4, Y: 0}, TargetColor: "red"},
		}
		_, err := ParseRows(classicRows, agents)
		assert.ErrorContains(t, err, "impassable")
	})

	t.Run("rejects start on a closed door cell", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 3, Y: 2}, Goal: Position{X: 4, Y: 2}, TargetColor: "red"},
		}
		_, err := ParseRows(classicRows, agents)
		assert.ErrorContains(t, err, "impassable")
	})

	t.Run("rejects goal on an obstacle", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 3, Y: 0}, TargetColor: "red"},
		}
		_, err := ParseRows(classicRows, agents)
		assert.ErrorContains(t, err, "goal")
	})

	t.Run("accepts goal behind the door", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 3, Y: 2}, TargetColor: "red"},
		}
		_, err := ParseRows(classicRows, agents)
		assert.NoError(t, err)
	})

	t.Run("rejects missing target color", func(t *testing.T) {
		agents := []AgentSpec{
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 4, Y: 0}},
		}
		_, err := ParseRows(classicRows, agents)
		assert.ErrorContains(t, err, "target color")
	})

	t.Run("rejects agentless puzzle", func(t *testing.T) {
		_, err := ParseRows(classicRows, nil)
		assert.Error(t, err)
	})
}

func TestParseRows(t *testing.T) {
	t.Run("rejects ragged rows", func(t *testing.T) {
		rows := []string{"...", ".."}
		_, err := ParseRows(rows, classicAgents[:1])
		assert.ErrorContains(t, err, "cells")
	})

	t.Run("rejects unknown symbols", func(t *testing.T) {
		rows := []string{"..C", "..S", "..X"}
		_, err := ParseRows(rows, []AgentSpec{
			{Start: Position{X: 0, Y: 0}, Goal: Position{X: 0, Y: 2}, TargetColor: "red"},
		})
		assert.ErrorContains(t, err, "symbol")
	})

	t.Run("rejects boards without a color tile", func(t *testing.T) {
		rows := []string{"...", "..S", "..."}
		_, err := ParseRows(rows, classicAgents[:1])
		assert.ErrorContains(t, err, "color tile")
	})

	t.Run("rejects two door switches", func(t *testing.T) {
		rows := []string{"..C", "..S", "..S"}
		_, err := ParseRows(rows, classicAgents[:1])
		assert.ErrorContains(t, err, "door switch")
	})
}

func TestIsPassable(t *testing.T) {
	g := classicGrid(t)

	t.Run("out of bounds is never passable", func(t *testing.T) {
		assert.False(t, g.IsPassable(-1, 0, true))
		assert.False(t, g.IsPassable(0, -1, true))
		assert.False(t, g.IsPassable(5, 0, true))
		assert.False(t, g.IsPassable(0, 5, true))
	})

	t.Run("obstacles are never passable", func(t *testing.T) {
		assert.False(t, g.IsPassable(3, 0, false))
		assert.False(t, g.IsPassable(3, 0, true))
	})

	t.Run("door cell opens with the door", func(t *testing.T) {
		assert.False(t, g.IsPassable(3, 2, false))
		assert.True(t, g.IsPassable(3, 2, true))
	})

	t.Run("special cells are passable", func(t *testing.T) {
		assert.True(t, g.IsPassable(2, 1, false)) // color tile
		assert.True(t, g.IsPassable(2, 3, false)) // door switch
		assert.True(t, g.IsPassable(0, 0, false))
	})
}
