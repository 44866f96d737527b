// Package service orchestrates the planning core behind the API:
// puzzle persistence, plan caching and replay.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/Jellal-17/puzzle-planner-api/domain"
	"github.com/Jellal-17/puzzle-planner-api/planner"
	"github.com/Jellal-17/puzzle-planner-api/puzzle"
	"github.com/Jellal-17/puzzle-planner-api/service/i"
	"github.com/google/uuid"
)

const (
	defaultCachePrefix    = "planner"
	defaultMaxRandomSteps = 10000

	// StrategyRandom replays a live random walk instead of a plan. It
	// is valid for Replay only; Solve rejects it.
	StrategyRandom = "random"

	planCacheKeyFmt = "%s:plan:%s:%s"
)

// ErrUnknownStrategy reports a strategy selector the service does not
// recognize.
var ErrUnknownStrategy = planner.ErrUnknownStrategy

// Options configures a PlannerService.
type Options struct {
	// CachePrefix namespaces the plan cache keys.
	CachePrefix string

	// MaxRandomSteps caps a random replay that never reaches the goal.
	MaxRandomSteps int
}

// PlannerService implements i.Planner on top of a puzzle repository and
// a plan cache.
type PlannerService struct {
	repo   i.PuzzleRepo
	cache  i.PlanCache
	logger i.Logger
	opts   *Options
}

// NewPlannerService wires a PlannerService.
func NewPlannerService(repo i.PuzzleRepo, cache i.PlanCache, logger i.Logger, opts *Options) (i.Planner, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.CachePrefix == "" {
		opts.CachePrefix = defaultCachePrefix
	}
	if opts.MaxRandomSteps <= 0 {
		opts.MaxRandomSteps = defaultMaxRandomSteps
	}

	return &PlannerService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// CreatePuzzle validates the definition by building its grid, assigns
// an ID when missing, and saves it.
func (ps *PlannerService) CreatePuzzle(p *dmn.Puzzle) error {
	if _, err := p.Grid(); err != nil {
		return fmt.Errorf("invalid puzzle definition: %w", err)
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	if err := ps.repo.Save(p); err != nil {
		ps.logger.Error(fmt.Sprintf("Saving puzzle %s: %v", p.ID, err))
		return err
	}
	ps.logger.Info(fmt.Sprintf("Puzzle stored: ID=%s Name=%q", p.ID, p.Name))
	return nil
}

// PuzzleByID retrieves a stored puzzle definition.
func (ps *PlannerService) PuzzleByID(id uuid.UUID) (*dmn.Puzzle, error) {
	return ps.repo.ByID(id)
}

// Solve plans the puzzle, going through the plan cache. Identical
// requests compute once; an unsolvable puzzle is cached like any other
// outcome.
func (ps *PlannerService) Solve(ctx context.Context, id uuid.UUID, strategy string) (*dmn.SolveResult, error) {
	strat, err := planner.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	p, err := ps.repo.ByID(id)
	if err != nil {
		return nil, err
	}
	grid, err := p.Grid()
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf(planCacheKeyFmt, ps.opts.CachePrefix, id, strat)
	raw, err := ps.cache.GetOrCompute(ctx, key, func() ([]byte, error) {
		ps.logger.Info(fmt.Sprintf("Planning puzzle: ID=%s Strategy=%s", id, strat))
		result := ps.solve(grid, strat)
		return json.Marshal(result)
	})
	if err != nil {
		ps.logger.Error(fmt.Sprintf("Solving puzzle %s with %s: %v", id, strat, err))
		return nil, err
	}

	var result dmn.SolveResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decoding cached plan: %w", err)
	}
	return &result, nil
}

func (ps *PlannerService) solve(grid *puzzle.Grid, strat planner.Strategy) *dmn.SolveResult {
	result := &dmn.SolveResult{Strategy: string(strat)}

	plan, err := planner.Solve(grid, puzzle.InitialState(grid), strat)
	switch {
	case errors.Is(err, planner.ErrNoSolution):
		// A normal outcome; the caller decides what to do about it.
	case err != nil:
		// Strategy was parsed upfront; Solve has no other failure mode.
	default:
		result.Solvable = true
		result.Plan = plan
	}
	return result
}

// Replay feeds the step sequence of a solve (or a random walk) to emit.
func (ps *PlannerService) Replay(ctx context.Context, id uuid.UUID, strategy string, emit func(dmn.ReplayStep) error) error {
	if strategy == StrategyRandom {
		return ps.replayRandom(id, emit)
	}

	result, err := ps.Solve(ctx, id, strategy)
	if err != nil {
		return err
	}
	if !result.Solvable {
		return planner.ErrNoSolution
	}

	p, err := ps.repo.ByID(id)
	if err != nil {
		return err
	}
	grid, err := p.Grid()
	if err != nil {
		return err
	}

	state := puzzle.InitialState(grid)
	for step, action := range result.Plan {
		next, ok := puzzle.Apply(grid, state, action)
		if !ok {
			// A cached plan can only be illegal if the stored puzzle
			// changed underneath it.
			return fmt.Errorf("cached plan step %d is illegal for puzzle %s", step, id)
		}
		state = next
		if err := emit(dmn.ReplayStep{
			Step:   step,
			Action: action,
			State:  state,
			Goal:   state.IsGoal(grid),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (ps *PlannerService) replayRandom(id uuid.UUID, emit func(dmn.ReplayStep) error) error {
	p, err := ps.repo.ByID(id)
	if err != nil {
		return err
	}
	grid, err := p.Grid()
	if err != nil {
		return err
	}

	ctrl := planner.NewRandomController(time.Now().UnixNano())
	state := puzzle.InitialState(grid)
	for step := 0; step < ps.opts.MaxRandomSteps && !state.IsGoal(grid); step++ {
		action, next, ok := ctrl.Next(grid, state)
		if !ok {
			ps.logger.Warning(fmt.Sprintf("Random replay of %s stuck with no legal action", id))
			return nil
		}
		state = next
		if err := emit(dmn.ReplayStep{
			Step:   step,
			Action: action,
			State:  state,
			Goal:   state.IsGoal(grid),
		}); err != nil {
			return err
		}
	}
	return nil
}
