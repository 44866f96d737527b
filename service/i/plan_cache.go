package i

import "context"

// PlanCache is a read-through cache for solve results. GetOrCompute
// returns the cached value for key when present; otherwise it runs
// compute exactly once (guarding against concurrent fills of the same
// key), stores the result and returns it.
type PlanCache interface {
	GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error)
}
