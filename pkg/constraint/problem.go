// Package constraint provides finite-domain CSP abstractions.
// This file defines the Problem aggregate that owns variables and bound
// constraints and validates their configuration at setup time.
package constraint

import (
	"fmt"
	"sync"
)

// Problem represents a constraint satisfaction problem declaratively.
// A problem consists of:
//   - Variables: payload/domain bindings registered in a fixed order
//   - Constraints: predicates bound to ordered scopes of those variables
//
// Problems are constructed incrementally: register every variable first,
// then bind constraints to subsets of them. Once constructed, a problem is
// immutable during solving, enabling safe concurrent access by parallel
// search workers.
//
// Thread safety: construction is mutex-guarded, but problems are meant to
// be built sequentially and treated as read-only while a Solver runs.
type Problem struct {
	// variables holds all bindings in registration order
	variables []*Variable

	// byKey maps payload keys to bindings for duplicate and scope checks
	byKey map[string]*Variable

	// constraints holds all bound constraints in binding order
	constraints []*boundConstraint

	// mu protects the problem during construction
	mu sync.RWMutex
}

// boundConstraint pairs a constraint with the ordered scope it was bound
// to. The scope is resolved to variable bindings at AddConstraint time, so
// an unknown payload is rejected immediately rather than at solve time.
type boundConstraint struct {
	constraint Constraint
	scope      []*Variable
}

// NewProblem creates a new empty problem.
func NewProblem() *Problem {
	return &Problem{
		variables:   make([]*Variable, 0),
		byKey:       make(map[string]*Variable),
		constraints: make([]*boundConstraint, 0),
	}
}

// AddVariable registers one payload with its domain of candidate values and
// returns the resulting binding. The payload is referenced, not copied.
//
// Fails with ErrDuplicateVariable if a binding with the same payload key
// already exists. Registering an empty domain is accepted — the problem is
// then trivially unsatisfiable and the solver short-circuits to zero
// solutions; use Validate to detect it eagerly.
func (p *Problem) AddVariable(payload Payload, domain *Domain) (*Variable, error) {
	if payload == nil {
		return nil, fmt.Errorf("AddVariable: payload cannot be nil")
	}
	if domain == nil {
		domain = NewDomain()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := payload.Key()
	if _, exists := p.byKey[key]; exists {
		return nil, fmt.Errorf("AddVariable: %w: %q", ErrDuplicateVariable, key)
	}

	v := &Variable{
		id:      len(p.variables),
		payload: payload,
		domain:  domain,
	}
	p.variables = append(p.variables, v)
	p.byKey[key] = v
	return v, nil
}

// AddVariables registers multiple payloads sharing the same domain and
// returns the bindings in argument order. Registration stops at the first
// failing payload; earlier registrations remain in place.
func (p *Problem) AddVariables(payloads []Payload, domain *Domain) ([]*Variable, error) {
	variables := make([]*Variable, 0, len(payloads))
	for _, payload := range payloads {
		v, err := p.AddVariable(payload, domain)
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}
	return variables, nil
}

// AddConstraint binds a constraint to an ordered scope of already
// registered payloads. During solving the constraint is evaluated as soon
// as every scope variable has a trial value, with values and payloads
// passed to Evaluate in scope order.
//
// Fails with ErrUnknownVariable if any scope payload was never registered.
// An empty scope is legal: such a constraint is evaluated exactly once,
// against empty slices, before search begins — a degenerate always/never
// global gate.
func (p *Problem) AddConstraint(c Constraint, scope ...Payload) error {
	if c == nil {
		return fmt.Errorf("AddConstraint: constraint cannot be nil")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	vars := make([]*Variable, len(scope))
	for i, payload := range scope {
		if payload == nil {
			return fmt.Errorf("AddConstraint: scope[%d] is nil", i)
		}
		v, ok := p.byKey[payload.Key()]
		if !ok {
			return fmt.Errorf("AddConstraint: %w: %q", ErrUnknownVariable, payload.Key())
		}
		vars[i] = v
	}

	p.constraints = append(p.constraints, &boundConstraint{
		constraint: c,
		scope:      vars,
	})
	return nil
}

// Variable retrieves a binding by payload key.
// Returns nil if the key was never registered.
func (p *Problem) Variable(key string) *Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.byKey[key]
}

// Variables returns all bindings in registration order.
// The returned slice should not be modified.
func (p *Problem) Variables() []*Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variables
}

// VariableCount returns the number of registered variables.
func (p *Problem) VariableCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.variables)
}

// Constraints returns the bound constraint objects in binding order.
// The returned slice should not be modified.
func (p *Problem) Constraints() []Constraint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Constraint, len(p.constraints))
	for i, bc := range p.constraints {
		out[i] = bc.constraint
	}
	return out
}

// ConstraintCount returns the number of bound constraints.
func (p *Problem) ConstraintCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.constraints)
}

// Clone returns an independent copy of the problem: domains are cloned,
// constraints are duplicated via their Clone capability, and scopes are
// rebound to the copied variables. Payload objects are shared by reference
// and must therefore be treated as read-only by both copies.
func (p *Problem) Clone() *Problem {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := NewProblem()
	for _, v := range p.variables {
		nv := &Variable{
			id:      v.id,
			payload: v.payload,
			domain:  v.domain.Clone(),
		}
		out.variables = append(out.variables, nv)
		out.byKey[nv.Key()] = nv
	}
	for _, bc := range p.constraints {
		scope := make([]*Variable, len(bc.scope))
		for i, sv := range bc.scope {
			scope[i] = out.variables[sv.id]
		}
		out.constraints = append(out.constraints, &boundConstraint{
			constraint: bc.constraint.Clone(),
			scope:      scope,
		})
	}
	return out
}

// Validate checks if the problem is well-formed and ready for solving.
// Returns an error wrapping ErrEmptyDomain if any variable's domain has no
// candidate values. Scope integrity needs no re-check here: AddConstraint
// already rejects unregistered scope members.
//
// Validation is optional — Solve treats an empty domain as a zero-solution
// fast path rather than an error — but lets callers fail fast.
func (p *Problem) Validate() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, v := range p.variables {
		if v.domain.Count() == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyDomain, v.Key())
		}
	}
	return nil
}

// String returns a human-readable representation of the problem.
func (p *Problem) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fmt.Sprintf("Problem{variables: %d, constraints: %d}",
		len(p.variables), len(p.constraints))
}
