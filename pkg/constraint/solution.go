// Package constraint provides finite-domain CSP abstractions.
// This file defines the Solution value object returned by the solver.
package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// Assignment is one payload-key/value pair of a solution.
type Assignment struct {
	Key   string
	Value int
}

// Solution is a complete assignment of one domain value to every variable
// of a problem, keyed by payload identity. Solutions are immutable value
// objects constructed by the solver; they share no mutable state with the
// problem that produced them.
type Solution struct {
	values map[string]int
	keys   []string // payload keys in ascending lexicographic order
}

// newSolution captures the trial values for the given search order as an
// independent Solution.
func newSolution(order []*Variable, trial []int) Solution {
	values := make(map[string]int, len(order))
	keys := make([]string, len(order))
	for i, v := range order {
		key := v.Key()
		values[key] = trial[i]
		keys[i] = key
	}
	sort.Strings(keys)
	return Solution{values: values, keys: keys}
}

// Value returns the value assigned to the variable with the given payload
// key, and whether that key exists in the solution.
func (s Solution) Value(key string) (int, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of assigned variables.
func (s Solution) Len() int {
	return len(s.keys)
}

// Keys returns the payload keys in ascending lexicographic order.
func (s Solution) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Assignments returns all key/value pairs ordered by key, providing a
// deterministic iteration order for printing and comparison.
func (s Solution) Assignments() []Assignment {
	out := make([]Assignment, len(s.keys))
	for i, k := range s.keys {
		out[i] = Assignment{Key: k, Value: s.values[k]}
	}
	return out
}

// Equal returns true if both solutions assign the same values to the same
// keys.
func (s Solution) Equal(other Solution) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for k, v := range s.values {
		ov, ok := other.values[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// String returns a human-readable representation with keys in ascending
// order. Example: "{Black=1, Blue=0, Green=1}".
func (s Solution) String() string {
	var builder strings.Builder
	builder.WriteString("{")
	for i, k := range s.keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%s=%d", k, s.values[k]))
	}
	builder.WriteString("}")
	return builder.String()
}
