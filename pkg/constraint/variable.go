// Package constraint provides finite-domain CSP abstractions.
// This file defines the Payload collaborator interface and the Variable
// binding that pairs one payload with one domain.
package constraint

import "fmt"

// Payload is the interface client domain objects must satisfy to act as
// variables in a Problem. The engine never interprets a payload beyond its
// key; constraint predicates receive payload references read-only and may
// inspect whatever fields they need.
//
// Key must return a stable identifier, independent of any mutable payload
// state. Keys supply equality (two payloads with the same key are the same
// variable), total lexicographic order (used for deterministic solution
// iteration), and map indexing inside the Problem.
type Payload interface {
	Key() string
}

// Variable binds one payload to its domain of candidate values.
// Variables are created during problem setup via Problem.AddVariable and
// are immutable thereafter. The payload is referenced, never copied: many
// variables across cloned problems may share one underlying payload object,
// and constraints must treat it as read-only.
type Variable struct {
	id      int     // registration index within the owning problem
	payload Payload // client object, shared by reference
	domain  *Domain // candidate values, immutable
}

// ID returns the registration index of this variable within its problem.
func (v *Variable) ID() int {
	return v.id
}

// Key returns the payload's stable identity key.
func (v *Variable) Key() string {
	return v.payload.Key()
}

// Payload returns the client payload object bound to this variable.
func (v *Variable) Payload() Payload {
	return v.payload
}

// Domain returns the variable's domain. The domain is immutable; callers
// wanting a private copy should Clone it.
func (v *Variable) Domain() *Domain {
	return v.domain
}

// String returns a human-readable representation of the binding.
func (v *Variable) String() string {
	return fmt.Sprintf("%s∈%s", v.payload.Key(), v.domain.String())
}
