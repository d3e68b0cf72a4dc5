// Package constraint provides finite-domain CSP abstractions.
// This file defines the Domain type representing the ordered, finite
// collection of candidate values a variable may take.
package constraint

import (
	"fmt"
	"strings"
)

// Domain is an immutable, ordered, finite collection of distinct candidate
// values for one variable. Candidate values are arbitrary integers; order
// is first-occurrence order at construction time and is an observable
// contract: the solver tries values in domain order, so for a fixed problem
// the solution enumeration sequence is reproducible across runs.
//
// Domains support:
//   - Membership testing
//   - Cardinality queries
//   - Ordered iteration over values
//
// Thread safety: Domains are immutable after construction and safe for
// concurrent read access by parallel search workers.
type Domain struct {
	values  []int
	present map[int]struct{}
}

// NewDomain creates a domain holding the given candidate values.
// Duplicate values are dropped; the first occurrence fixes the position
// of a value in the iteration order. An empty argument list produces an
// empty domain, which makes any problem containing it unsatisfiable.
func NewDomain(values ...int) *Domain {
	d := &Domain{
		values:  make([]int, 0, len(values)),
		present: make(map[int]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := d.present[v]; ok {
			continue
		}
		d.present[v] = struct{}{}
		d.values = append(d.values, v)
	}
	return d
}

// Count returns the number of values in the domain.
// An empty domain (Count() == 0) admits no assignment.
func (d *Domain) Count() int {
	return len(d.values)
}

// Has returns true if the domain contains the given value. O(1) operation.
func (d *Domain) Has(value int) bool {
	_, ok := d.present[value]
	return ok
}

// IsSingleton returns true if the domain contains exactly one value.
func (d *Domain) IsSingleton() bool {
	return len(d.values) == 1
}

// SingletonValue returns the single value in the domain.
// Panics if the domain is not a singleton.
func (d *Domain) SingletonValue() int {
	if len(d.values) != 1 {
		panic("SingletonValue called on non-singleton domain")
	}
	return d.values[0]
}

// IterateValues calls f for each value in the domain in domain order.
// The function must not modify the domain during iteration.
func (d *Domain) IterateValues(f func(value int)) {
	for _, v := range d.values {
		f(v)
	}
}

// Values returns all values in domain order as a fresh slice.
func (d *Domain) Values() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)
	return out
}

// Clone returns a copy of the domain.
func (d *Domain) Clone() *Domain {
	return NewDomain(d.values...)
}

// Equal returns true if both domains contain the same values in the same
// order. Order matters because it determines solution enumeration order.
func (d *Domain) Equal(other *Domain) bool {
	if other == nil || len(d.values) != len(other.values) {
		return false
	}
	for i, v := range d.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the domain.
// Example: "{0,1}" or "{1..9}" for consecutive ascending runs.
func (d *Domain) String() string {
	if len(d.values) == 0 {
		return "{}"
	}
	if len(d.values) == 1 {
		return fmt.Sprintf("{%d}", d.values[0])
	}
	if d.isConsecutiveRange() {
		return fmt.Sprintf("{%d..%d}", d.values[0], d.values[len(d.values)-1])
	}

	var builder strings.Builder
	builder.WriteString("{")
	for i, v := range d.values {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(fmt.Sprintf("%d", v))

		// Truncate if too many values
		if i >= 19 && len(d.values) > 20 {
			builder.WriteString(fmt.Sprintf(",...+%d more", len(d.values)-20))
			break
		}
	}
	builder.WriteString("}")
	return builder.String()
}

// isConsecutiveRange checks if values form an ascending consecutive range.
func (d *Domain) isConsecutiveRange() bool {
	for i := 1; i < len(d.values); i++ {
		if d.values[i] != d.values[i-1]+1 {
			return false
		}
	}
	return true
}
