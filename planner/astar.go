package planner

import (
	"container/heap"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
)

// solveAStar orders the frontier by f = g + h, with g the number of
// actions taken and h the heuristic below. h is admissible and
// consistent, so the first goal state popped ends an optimal plan and
// the result matches BFS in length.
func solveAStar(g *puzzle.Grid, start puzzle.State) (Plan, error) {
	startKey := start.Key()
	if start.IsGoal(g) {
		return Plan{}, nil
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &node{
		state: start,
		key:   startKey,
		f:     heuristic(g, start),
	})

	gScore := map[string]int{startKey: 0}
	parents := make(map[string]link)

	for expanded, limit := 0, maxExpansions(g); open.Len() > 0 && expanded < limit; expanded++ {
		current := heap.Pop(open).(*node)
		if current.g > gScore[current.key] {
			// Stale entry; a cheaper route to this state was found
			// after it was pushed.
			continue
		}

		if current.state.IsGoal(g) {
			return reconstruct(parents, startKey, current.key), nil
		}

		for _, succ := range puzzle.Successors(g, current.state) {
			key := succ.State.Key()
			tentative := current.g + 1
			if old, seen := gScore[key]; seen && tentative >= old {
				continue
			}
			gScore[key] = tentative
			parents[key] = link{parent: current.key, action: succ.Action}
			heap.Push(open, &node{
				state: succ.State,
				key:   key,
				g:     tentative,
				f:     tentative + heuristic(g, succ.State),
			})
		}
	}

	return nil, ErrNoSolution
}

// heuristic sums, per agent, a lower bound on its remaining actions:
// Manhattan distance to the goal once the color is acquired, otherwise
// the detour through the color tile. Walls and the door only lengthen
// real paths, so the bound never overestimates, and a single move
// changes each term by at most one, which makes it consistent.
func heuristic(g *puzzle.Grid, s puzzle.State) int {
	h := 0
	tile := g.ColorTilePos()
	for i := 0; i < g.NumAgents(); i++ {
		spec := g.Agent(i)
		pos := s.Positions[i]
		if s.Colors[i] == spec.TargetColor {
			h += pos.ManhattanTo(spec.Goal)
		} else {
			h += pos.ManhattanTo(tile) + tile.ManhattanTo(spec.Goal)
		}
	}
	return h
}

// node is a frontier entry.
type node struct {
	state puzzle.State
	key   string
	g     int
	f     int
	seq   int
	index int
}

// frontier is a min-heap on f. Equal f pops the deeper node first
// (larger g), which shrinks the frontier near the goal; remaining ties
// fall back to insertion order so runs stay deterministic. Preferring
// depth on ties is this planner's choice, not a requirement of A*.
type frontier struct {
	nodes []*node
	seq   int
}

func (f *frontier) Len() int { return len(f.nodes) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.nodes[i], f.nodes[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
	f.nodes[i].index = i
	f.nodes[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(f.nodes)
	n.seq = f.seq
	f.seq++
	f.nodes = append(f.nodes, n)
}

func (f *frontier) Pop() any {
	old := f.nodes
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	f.nodes = old[:len(old)-1]
	return n
}
