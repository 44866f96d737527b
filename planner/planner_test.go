package planner

import (
	"testing"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{BFS, DFS, AStar}

func mustGrid(t *testing.T, rows []string, agents []puzzle.AgentSpec) *puzzle.Grid {
	t.Helper()
	g, err := puzzle.ParseRows(rows, agents)
	require.NoError(t, err)
	return g
}

// singleAgentGrid is the canonical scenario: one agent from (0,0) to
// (4,4), color tile at (2,0), door switch at (2,2), the only crossing
// of the column-3 wall being the door cell at (3,2).
func singleAgentGrid(t *testing.T) *puzzle.Grid {
	return mustGrid(t,
		[]string{
			"..C#.",
			"...#.",
			"..SD.",
			"...#.",
			"...#.",
		},
		[]puzzle.AgentSpec{
			{Start: puzzle.Position{X: 0, Y: 0}, Goal: puzzle.Position{X: 4, Y: 4}, TargetColor: "red"},
		})
}

// classicGrid is the original three-agent puzzle.
func classicGrid(t *testing.T) *puzzle.Grid {
	return mustGrid(t,
		[]string{
			"...#.",
			"..C#.",
			"...D.",
			"..S#.",
			"...#.",
		},
		[]puzzle.AgentSpec{
			{Start: puzzle.Position{X: 0, Y: 0}, Goal: puzzle.Position{X: 4, Y: 0}, TargetColor: "red"},
			{Start: puzzle.Position{X: 0, Y: 2}, Goal: puzzle.Position{X: 4, Y: 2}, TargetColor: "green"},
			{Start: puzzle.Position{X: 0, Y: 4}, Goal: puzzle.Position{X: 4, Y: 4}, TargetColor: "blue"},
		})
}

// executePlan replays a plan step by step and asserts every action is
// legal; it returns the final state.
func executePlan(t *testing.T, g *puzzle.Grid, plan Plan) puzzle.State {
	t.Helper()
	state := puzzle.InitialState(g)
	for i, action := range plan {
		next, ok := puzzle.Apply(g, state, action)
		require.True(t, ok, "plan step %d is illegal", i)
		state = next
	}
	return state
}

func TestSolveSingleAgent(t *testing.T) {
	g := singleAgentGrid(t)
	start := puzzle.InitialState(g)

	// Tile, switch, activation and the walk to the goal: 2 + 2 + 1 + 4
	// actions is the provable minimum.
	const minActions = 9

	t.Run("bfs finds the minimal plan", func(t *testing.T) {
		plan, err := Solve(g, start, BFS)
		require.NoError(t, err)
		assert.Len(t, plan, minActions)
		assert.True(t, executePlan(t, g, plan).IsGoal(g))
	})

	t.Run("astar matches bfs length", func(t *testing.T) {
		plan, err := Solve(g, start, AStar)
		require.NoError(t, err)
		assert.Len(t, plan, minActions)
		assert.True(t, executePlan(t, g, plan).IsGoal(g))
	})

	t.Run("dfs solves without a length guarantee", func(t *testing.T) {
		plan, err := Solve(g, start, DFS)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(plan), minActions)
		assert.True(t, executePlan(t, g, plan).IsGoal(g))
	})
}

func TestSolveClassic(t *testing.T) {
	g := classicGrid(t)
	start := puzzle.InitialState(g)

	bfsPlan, err := Solve(g, start, BFS)
	require.NoError(t, err)
	astarPlan, err := Solve(g, start, AStar)
	require.NoError(t, err)
	dfsPlan, err := Solve(g, start, DFS)
	require.NoError(t, err)

	assert.Equal(t, len(bfsPlan), len(astarPlan), "both optimal strategies agree on length")
	assert.GreaterOrEqual(t, len(dfsPlan), len(bfsPlan))

	assert.True(t, executePlan(t, g, bfsPlan).IsGoal(g))
	assert.True(t, executePlan(t, g, astarPlan).IsGoal(g))
	assert.True(t, executePlan(t, g, dfsPlan).IsGoal(g))
}

func TestSolveDeterminism(t *testing.T) {
	g := classicGrid(t)
	start := puzzle.InitialState(g)

	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			first, err := Solve(g, start, strategy)
			require.NoError(t, err)
			second, err := Solve(g, start, strategy)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	// The agent starts on the color tile, which is also its goal.
	g := mustGrid(t,
		[]string{
			"..C",
			"..S",
			"...",
		},
		[]puzzle.AgentSpec{
			{Start: puzzle.Position{X: 2, Y: 0}, Goal: puzzle.Position{X: 2, Y: 0}, TargetColor: "red"},
		})
	start := puzzle.InitialState(g)
	require.True(t, start.IsGoal(g))

	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			plan, err := Solve(g, start, strategy)
			require.NoError(t, err)
			assert.Empty(t, plan)
		})
	}
}

func TestSolveNoSolution(t *testing.T) {
	t.Run("color tile sealed off", func(t *testing.T) {
		// The goal cell is physically reachable, but the tile is walled
		// in, so the target color can never be acquired.
		g := mustGrid(t,
			[]string{
				".....",
				".#...",
				"#C#..",
				".#...",
				"....S",
			},
			[]puzzle.AgentSpec{
				{Start: puzzle.Position{X: 0, Y: 0}, Goal: puzzle.Position{X: 4, Y: 0}, TargetColor: "red"},
			})
		start := puzzle.InitialState(g)

		for _, strategy := range strategies {
			_, err := Solve(g, start, strategy)
			assert.ErrorIs(t, err, ErrNoSolution, "strategy %s", strategy)
		}
	})

	t.Run("agent walled off from its goal", func(t *testing.T) {
		g := mustGrid(t,
			[]string{
				".#C..",
				".#.S.",
				".#...",
				".#...",
				".#...",
			},
			[]puzzle.AgentSpec{
				{Start: puzzle.Position{X: 0, Y: 0}, Goal: puzzle.Position{X: 4, Y: 0}, TargetColor: "red"},
			})
		start := puzzle.InitialState(g)

		for _, strategy := range strategies {
			_, err := Solve(g, start, strategy)
			assert.ErrorIs(t, err, ErrNoSolution, "strategy %s", strategy)
		}
	})
}

func TestParseStrategy(t *testing.T) {
	for _, strategy := range strategies {
		parsed, err := ParseStrategy(string(strategy))
		assert.NoError(t, err)
		assert.Equal(t, strategy, parsed)
	}

	_, err := ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = Solve(classicGrid(t), puzzle.InitialState(classicGrid(t)), "dijkstra")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestRandomController(t *testing.T) {
	g := classicGrid(t)
	start := puzzle.InitialState(g)

	t.Run("only legal actions", func(t *testing.T) {
		ctrl := NewRandomController(1)
		state := start
		for i := 0; i < 100; i++ {
			action, next, ok := ctrl.Next(g, state)
			require.True(t, ok)
			applied, legal := puzzle.Apply(g, state, action)
			require.True(t, legal)
			require.True(t, applied.Equals(next))
			state = next
		}
	})

	t.Run("fixed seed reproduces the walk", func(t *testing.T) {
		first := NewRandomController(42)
		second := NewRandomController(42)
		state := start
		for i := 0; i < 50; i++ {
			a1, s1, ok1 := first.Next(g, state)
			a2, s2, ok2 := second.Next(g, state)
			require.True(t, ok1)
			require.True(t, ok2)
			assert.Equal(t, a1, a2)
			require.True(t, s1.Equals(s2))
			state = s1
		}
	})
}
