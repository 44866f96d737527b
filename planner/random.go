package planner

import (
	"math/rand"

	"github.com/Jellal-17/puzzle-planner-api/puzzle"
)

// RandomController is the baseline controller: instead of planning, it
// picks one uniformly random legal action per tick. It is consumed by
// the replay stream's random mode and by tests as a reference point for
// the search strategies.
type RandomController struct {
	rng *rand.Rand
}

// NewRandomController seeds a controller. A fixed seed reproduces the
// same walk.
func NewRandomController(seed int64) *RandomController {
	return &RandomController{rng: rand.New(rand.NewSource(seed))}
}

// Next picks a random legal action from s and returns it with the state
// it produces. ok is false only when no legal action exists.
func (c *RandomController) Next(g *puzzle.Grid, s puzzle.State) (puzzle.Action, puzzle.State, bool) {
	succs := puzzle.Successors(g, s)
	if len(succs) == 0 {
		return puzzle.Action{}, puzzle.State{}, false
	}
	pick := succs[c.rng.Intn(len(succs))]
	return pick.Action, pick.State, true
}
