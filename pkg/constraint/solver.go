// Package constraint provides the backtracking search engine.
//
// # Architecture Overview
//
// The solver separates the immutable problem definition from transient
// search state:
//
//	Problem (immutable during solving):
//	  - Variables with their domains and payloads
//	  - Constraints bound to ordered scopes
//	  - Shared by all parallel workers (zero copy cost)
//
//	searchPlan (derived once per solve):
//	  - Static variable search order (deterministic)
//	  - For every prefix of that order, the constraints that become fully
//	    determined at that point (forward checking index)
//
//	searcher (mutable, per worker):
//	  - The partial assignment stack for one depth-first traversal
//	  - Created and destroyed entirely within one solve invocation
//
// # How Forward Checking Works
//
// A constraint can only be evaluated once every variable in its scope has
// a trial value. The plan therefore assigns each constraint to the search
// position of the last scope variable in search order; when the search
// extends the partial assignment at that position, exactly the newly
// determined constraints are checked:
//
//	order:    [A, B, C]
//	scopes:   c1(A), c2(A,C), c3(B)
//	checksAt: position 0 → {c1}, position 1 → {c3}, position 2 → {c2}
//
// A failing check discards the candidate value immediately, pruning the
// whole subtree below it instead of enumerating the full cross product.
package constraint

import (
	"context"
	"sort"
)

// VariableOrdering selects the static variable search order.
// Both orderings are deterministic for identical input, which makes the
// solution enumeration sequence reproducible across runs — an observable,
// tested property of the engine.
type VariableOrdering int

const (
	// OrderRegistration searches variables in registration order.
	// This is the default and the reference enumeration contract.
	OrderRegistration VariableOrdering = iota

	// OrderMostConstrained searches variables with the smallest domains
	// first, breaking ties by higher constraint degree and then by
	// registration order. Often prunes earlier on heterogeneous problems;
	// changes enumeration order but never the solution set.
	OrderMostConstrained
)

// SolverConfig holds search configuration.
type SolverConfig struct {
	// Ordering selects the static variable search order.
	Ordering VariableOrdering
}

// DefaultSolverConfig returns the default configuration.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{Ordering: OrderRegistration}
}

// Solver enumerates the solutions of a Problem using depth-first
// backtracking with forward checking.
//
// The search is exhaustive: it finds every satisfying complete assignment,
// with no duplicates and no omissions, and terminates when the assignment
// stack is exhausted. For a fixed problem (registration order, domain
// orders, constraint bindings) the emitted solution sequence is identical
// across runs.
//
// Thread safety: a Solver holds no mutable state of its own; Solve and
// SolveParallel build their transient search state per invocation. The
// underlying Problem must not be mutated while a solve is in progress.
type Solver struct {
	problem *Problem
	config  *SolverConfig
}

// NewSolver creates a solver for the given problem with the default
// configuration. The problem should be fully constructed first.
func NewSolver(problem *Problem) *Solver {
	return NewSolverWithConfig(problem, nil)
}

// NewSolverWithConfig creates a solver with a custom configuration.
// A nil config selects the defaults.
func NewSolverWithConfig(problem *Problem, config *SolverConfig) *Solver {
	if config == nil {
		config = DefaultSolverConfig()
	}
	return &Solver{problem: problem, config: config}
}

// Problem returns the problem being solved. It is read-only during solving
// and safe for concurrent access by multiple solver instances.
func (s *Solver) Problem() *Problem {
	return s.problem
}

// Solve enumerates satisfying assignments of the problem.
// Returns up to maxSolutions solutions, or all solutions if
// maxSolutions <= 0, in deterministic enumeration order (search order for
// variables, domain order for values).
//
// Solve blocks until the exhaustive search completes, the solution limit
// is reached, or ctx is cancelled. On cancellation it returns the partial
// solution set gathered so far together with ctx.Err(), so a non-nil error
// is the "search incomplete" indicator.
//
// Edge policy:
//   - zero variables and zero constraints: exactly one empty solution
//   - any variable with an empty domain: zero solutions, nil error
//   - empty-scope constraints: evaluated once, before search begins
func (s *Solver) Solve(ctx context.Context, maxSolutions int) ([]Solution, error) {
	plan := s.buildPlan()
	solutions := make([]Solution, 0)

	if !plan.viable() {
		return solutions, nil
	}
	if len(plan.order) == 0 {
		solutions = append(solutions, newSolution(nil, nil))
		return solutions, nil
	}

	sr := newSearcher(plan)
	err := sr.run(ctx, 0, &solutions, maxSolutions)
	return solutions, err
}

// searchPlan is the static, read-only description of one search: the
// variable order plus the forward-checking index. Plans are shared by all
// parallel workers; all mutable traversal state lives in searcher.
type searchPlan struct {
	// order holds the variables in search order
	order []*Variable

	// checksAt[pos] holds the constraints whose scope becomes fully
	// assigned when order[pos] receives a trial value
	checksAt [][]compiledCheck

	// globals holds empty-scope constraints, evaluated once at depth 0
	globals []Constraint

	// maxScope is the largest scope length, sizing the value scratch
	maxScope int
}

// compiledCheck is a constraint with its scope resolved to search
// positions. Payloads are fixed at plan time; only trial values vary.
type compiledCheck struct {
	constraint Constraint
	positions  []int
	payloads   []Payload
}

// viable reports whether search can yield any solution at all: every
// domain must be non-empty and every empty-scope constraint must accept
// the empty assignment.
func (p *searchPlan) viable() bool {
	for _, v := range p.order {
		if v.domain.Count() == 0 {
			return false
		}
	}
	for _, g := range p.globals {
		if !g.Evaluate(nil, nil) {
			return false
		}
	}
	return true
}

// buildPlan computes the static search order and groups every constraint
// at the earliest position where its scope is fully assigned.
func (s *Solver) buildPlan() *searchPlan {
	s.problem.mu.RLock()
	defer s.problem.mu.RUnlock()

	n := len(s.problem.variables)
	order := make([]*Variable, n)
	copy(order, s.problem.variables)

	if s.config.Ordering == OrderMostConstrained {
		degree := make([]int, n)
		for _, bc := range s.problem.constraints {
			for _, v := range bc.scope {
				degree[v.id]++
			}
		}
		sort.SliceStable(order, func(i, j int) bool {
			di, dj := order[i].domain.Count(), order[j].domain.Count()
			if di != dj {
				return di < dj
			}
			if degree[order[i].id] != degree[order[j].id] {
				return degree[order[i].id] > degree[order[j].id]
			}
			return order[i].id < order[j].id
		})
	}

	position := make([]int, n)
	for pos, v := range order {
		position[v.id] = pos
	}

	plan := &searchPlan{
		order:    order,
		checksAt: make([][]compiledCheck, n),
	}
	for _, bc := range s.problem.constraints {
		if len(bc.scope) == 0 {
			plan.globals = append(plan.globals, bc.constraint)
			continue
		}
		positions := make([]int, len(bc.scope))
		payloads := make([]Payload, len(bc.scope))
		determinedAt := 0
		for i, v := range bc.scope {
			positions[i] = position[v.id]
			payloads[i] = v.payload
			if positions[i] > determinedAt {
				determinedAt = positions[i]
			}
		}
		plan.checksAt[determinedAt] = append(plan.checksAt[determinedAt], compiledCheck{
			constraint: bc.constraint,
			positions:  positions,
			payloads:   payloads,
		})
		if len(bc.scope) > plan.maxScope {
			plan.maxScope = len(bc.scope)
		}
	}
	return plan
}

// searcher is the transient per-traversal state: the trial assignment
// indexed by search position plus a scratch buffer for constraint
// arguments. Each parallel worker owns its own searcher; the plan is
// shared read-only.
type searcher struct {
	plan    *searchPlan
	trial   []int
	scratch []int
}

func newSearcher(plan *searchPlan) *searcher {
	return &searcher{
		plan:    plan,
		trial:   make([]int, len(plan.order)),
		scratch: make([]int, plan.maxScope),
	}
}

// checksPass evaluates every constraint newly determined at pos against
// the current trial assignment.
func (sr *searcher) checksPass(pos int) bool {
	for _, check := range sr.plan.checksAt[pos] {
		values := sr.scratch[:len(check.positions)]
		for i, p := range check.positions {
			values[i] = sr.trial[p]
		}
		if !check.constraint.Evaluate(values, check.payloads) {
			return false
		}
	}
	return true
}

// run performs the depth-first backtracking traversal for search positions
// startPos..n-1, with trial values below startPos already fixed and
// checked by the caller. Found solutions are appended to *solutions; on
// cancellation run returns ctx.Err() with the partial set preserved.
//
// The traversal is iterative — an explicit frame stack instead of
// recursion — so deep problems cannot overflow the goroutine stack and
// cancellation can be checked once per step.
func (sr *searcher) run(ctx context.Context, startPos int, solutions *[]Solution, maxSolutions int) error {
	n := len(sr.plan.order)
	if startPos >= n {
		*solutions = append(*solutions, newSolution(sr.plan.order, sr.trial))
		return nil
	}

	type searchFrame struct {
		valueIndex int
	}
	frames := make([]searchFrame, 1, n-startPos)

	for len(frames) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pos := startPos + len(frames) - 1
		frame := &frames[len(frames)-1]
		values := sr.plan.order[pos].domain.values

		if frame.valueIndex >= len(values) {
			// Domain exhausted: backtrack to the previous variable
			frames = frames[:len(frames)-1]
			continue
		}

		sr.trial[pos] = values[frame.valueIndex]
		frame.valueIndex++

		if !sr.checksPass(pos) {
			// Prune: discard this candidate, try the next domain value
			continue
		}

		if pos+1 == n {
			// Every constraint is determined by now, so the assignment is
			// a solution. Record it and continue backtracking for more.
			*solutions = append(*solutions, newSolution(sr.plan.order, sr.trial))
			if maxSolutions > 0 && len(*solutions) >= maxSolutions {
				return nil
			}
			continue
		}

		frames = append(frames, searchFrame{})
	}
	return nil
}
