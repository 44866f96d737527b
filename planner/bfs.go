package planner

import "github.com/Jellal-17/puzzle-planner-api/puzzle"

// solveBFS expands states in FIFO order. Because every action costs the
// same, the first plan that reaches the goal is the shortest one: states
// are finalized at their first (shallowest) discovery and the visited
// set rejects later, longer routes to them.
func solveBFS(g *puzzle.Grid, start puzzle.State) (Plan, error) {
	startKey := start.Key()
	if start.IsGoal(g) {
		return Plan{}, nil
	}

	frontier := []puzzle.State{start}
	visited := map[string]struct{}{startKey: {}}
	parents := make(map[string]link)

	for expanded, limit := 0, maxExpansions(g); len(frontier) > 0 && expanded < limit; expanded++ {
		current := frontier[0]
		frontier = frontier[1:]
		currentKey := current.Key()

		for _, succ := range puzzle.Successors(g, current) {
			key := succ.State.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			parents[key] = link{parent: currentKey, action: succ.Action}

			if succ.State.IsGoal(g) {
				return reconstruct(parents, startKey, key), nil
			}
			frontier = append(frontier, succ.State)
		}
	}

	return nil, ErrNoSolution
}
