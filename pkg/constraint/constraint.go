// Package constraint provides finite-domain CSP abstractions.
// This file defines the Constraint interface for polymorphic predicates
// over ordered scopes of variables, plus a function adapter for the
// common closure-based case.
package constraint

import "fmt"

// Constraint is a predicate over an ordered subset (the "scope") of a
// problem's variables. The scope itself is declared when the constraint is
// bound via Problem.AddConstraint; the constraint object only carries the
// evaluation logic and any per-instance tuning parameters.
//
// Contract:
//   - Evaluate must be a pure function of its arguments: no side effects,
//     no mutation of payloads, no dependence on variables outside the
//     declared scope. The solver evaluates a constraint as soon as every
//     variable in its scope has a trial value, in an order of its choosing,
//     so an impure predicate produces undefined pruning.
//   - A constraint's declared scope should be no larger than what Evaluate
//     actually inspects; an over-broad scope delays pruning (hurting
//     performance, not correctness), while reading a payload outside the
//     declared scope violates the contract.
//   - Clone must return an independent copy so that a Problem can be
//     duplicated without aliasing constraint state. Stateless constraints
//     may return themselves.
//
// Constraints are immutable once bound and safe for concurrent read access
// by parallel search workers.
type Constraint interface {
	// Evaluate reports whether the trial assignment is still viable.
	// values holds the trial value for each scope variable in scope order;
	// payloads holds the corresponding payload references, read-only.
	// Both slices always have the same length as the declared scope.
	Evaluate(values []int, payloads []Payload) bool

	// Clone returns an independent copy of the constraint.
	Clone() Constraint

	// Type returns a string identifying the constraint kind.
	Type() string

	// String returns a human-readable representation.
	String() string
}

// FuncConstraint adapts a plain predicate function to the Constraint
// interface. It is the quickest way to express one-off constraints:
//
//	c := constraint.NewFuncConstraint("xBeforeY", func(values []int, _ []constraint.Payload) bool {
//	    return values[0] < values[1]
//	})
//
// The wrapped function must obey the purity contract documented on
// Constraint. Clone shares the function pointer, which is safe precisely
// because the function is pure.
type FuncConstraint struct {
	name string
	fn   func(values []int, payloads []Payload) bool
}

// NewFuncConstraint wraps fn as a Constraint. The name appears in Type and
// String output and has no semantic effect.
func NewFuncConstraint(name string, fn func(values []int, payloads []Payload) bool) (*FuncConstraint, error) {
	if fn == nil {
		return nil, fmt.Errorf("FuncConstraint: fn cannot be nil")
	}
	if name == "" {
		name = "FuncConstraint"
	}
	return &FuncConstraint{name: name, fn: fn}, nil
}

// Evaluate implements Constraint.
func (c *FuncConstraint) Evaluate(values []int, payloads []Payload) bool {
	return c.fn(values, payloads)
}

// Clone implements Constraint.
func (c *FuncConstraint) Clone() Constraint {
	return &FuncConstraint{name: c.name, fn: c.fn}
}

// Type implements Constraint.
func (c *FuncConstraint) Type() string { return c.name }

// String implements Constraint.
func (c *FuncConstraint) String() string {
	return fmt.Sprintf("%s(func)", c.name)
}
