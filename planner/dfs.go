package planner

import "github.com/Jellal-17/puzzle-planner-api/puzzle"

// solveDFS explores depth-first over an explicit stack, so its memory
// use is bounded by the state space and not by the Go call stack. The
// plan it returns is the first one found in enumeration order and
// carries no length guarantee.
func solveDFS(g *puzzle.Grid, start puzzle.State) (Plan, error) {
	startKey := start.Key()
	if start.IsGoal(g) {
		return Plan{}, nil
	}

	stack := []puzzle.State{start}
	visited := map[string]struct{}{startKey: {}}
	parents := make(map[string]link)

	for expanded, limit := 0, maxExpansions(g); len(stack) > 0 && expanded < limit; expanded++ {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
			stack = append(stack, succ.State)
		}
	}

	return nil, ErrNoSolution
}
