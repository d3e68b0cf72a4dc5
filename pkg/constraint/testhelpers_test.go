package constraint

import (
	"fmt"
	"testing"
)

// namedPayload is the minimal payload used by most tests: identity only.
type namedPayload struct {
	name string
}

func (p *namedPayload) Key() string { return p.name }

func named(names ...string) []Payload {
	out := make([]Payload, len(names))
	for i, n := range names {
		out[i] = &namedPayload{name: n}
	}
	return out
}

// mustFunc wraps NewFuncConstraint for tests where construction cannot fail.
func mustFunc(t *testing.T, name string, fn func(values []int, payloads []Payload) bool) *FuncConstraint {
	t.Helper()
	c, err := NewFuncConstraint(name, fn)
	if err != nil {
		t.Fatalf("NewFuncConstraint(%q) failed: %v", name, err)
	}
	return c
}

// bruteForce enumerates the full cross product of all domains in
// registration order and filters by every bound constraint, providing the
// reference solution set for completeness checks.
func bruteForce(p *Problem) []Solution {
	solutions := make([]Solution, 0)
	n := len(p.variables)
	trial := make([]int, n)

	var recurse func(pos int)
	recurse = func(pos int) {
		if pos == n {
			for _, bc := range p.constraints {
				values := make([]int, len(bc.scope))
				payloads := make([]Payload, len(bc.scope))
				for i, v := range bc.scope {
					values[i] = trial[v.id]
					payloads[i] = v.payload
				}
				if !bc.constraint.Evaluate(values, payloads) {
					return
				}
			}
			solutions = append(solutions, newSolution(p.variables, trial))
			return
		}
		for _, value := range p.variables[pos].domain.values {
			trial[pos] = value
			recurse(pos + 1)
		}
	}
	recurse(0)
	return solutions
}

// sameSolutionSet compares two solution lists as unordered sets of
// key→value mappings.
func sameSolutionSet(a, b []Solution) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s.String()]++
	}
	for _, s := range b {
		counts[s.String()]--
		if counts[s.String()] < 0 {
			return false
		}
	}
	return true
}

// sameSolutionSequence compares two solution lists element by element.
func sameSolutionSequence(a, b []Solution) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// assertNoDuplicates fails the test if any two solutions carry the same
// key→value mapping.
func assertNoDuplicates(t *testing.T, solutions []Solution) {
	t.Helper()
	seen := make(map[string]struct{}, len(solutions))
	for _, s := range solutions {
		k := s.String()
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate solution %s", k)
		}
		seen[k] = struct{}{}
	}
}

// countingConstraint wraps another constraint and counts evaluations,
// used to observe pruning behavior.
type countingConstraint struct {
	inner Constraint
	calls *int
}

func (c *countingConstraint) Evaluate(values []int, payloads []Payload) bool {
	*c.calls++
	return c.inner.Evaluate(values, payloads)
}

func (c *countingConstraint) Clone() Constraint {
	return &countingConstraint{inner: c.inner.Clone(), calls: c.calls}
}

func (c *countingConstraint) Type() string { return "Counting" }

func (c *countingConstraint) String() string {
	return fmt.Sprintf("Counting(%s)", c.inner.String())
}
