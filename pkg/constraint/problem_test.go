package constraint

import (
	"context"
	"errors"
	"testing"
)

func TestAddVariable_RegistersBinding(t *testing.T) {
	p := NewProblem()

	v, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain(1, 2, 3))
	if err != nil {
		t.Fatalf("AddVariable failed: %v", err)
	}
	if v.ID() != 0 || v.Key() != "x" {
		t.Errorf("binding = (id=%d key=%q), want (id=0 key=\"x\")", v.ID(), v.Key())
	}
	if p.VariableCount() != 1 {
		t.Errorf("VariableCount() = %d, want 1", p.VariableCount())
	}
	if p.Variable("x") != v {
		t.Error("Variable lookup did not return the registered binding")
	}
}

// TestAddVariable_DuplicateKey verifies the identity collision is rejected
// with the sentinel error, not silently ignored.
func TestAddVariable_DuplicateKey(t *testing.T) {
	p := NewProblem()

	if _, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain(1)); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain(2))
	if !errors.Is(err, ErrDuplicateVariable) {
		t.Fatalf("err = %v, want ErrDuplicateVariable", err)
	}
	if p.VariableCount() != 1 {
		t.Errorf("VariableCount() = %d after rejected registration, want 1", p.VariableCount())
	}
}

func TestAddVariable_NilPayload(t *testing.T) {
	p := NewProblem()

	if _, err := p.AddVariable(nil, NewDomain(1)); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestAddVariables_SharedDomain(t *testing.T) {
	p := NewProblem()

	vars, err := p.AddVariables(named("a", "b", "c"), NewDomain(0, 1))
	if err != nil {
		t.Fatalf("AddVariables failed: %v", err)
	}
	if len(vars) != 3 {
		t.Fatalf("got %d bindings, want 3", len(vars))
	}
	for i, v := range vars {
		if v.ID() != i {
			t.Errorf("vars[%d].ID() = %d, want %d", i, v.ID(), i)
		}
	}
}

// TestAddConstraint_UnknownVariable verifies binding to an unregistered
// scope member fails with the sentinel error.
func TestAddConstraint_UnknownVariable(t *testing.T) {
	p := NewProblem()
	if _, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain(1)); err != nil {
		t.Fatalf("AddVariable failed: %v", err)
	}

	c := mustFunc(t, "alwaysTrue", func([]int, []Payload) bool { return true })
	err := p.AddConstraint(c, &namedPayload{name: "ghost"})
	if !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("err = %v, want ErrUnknownVariable", err)
	}
	if p.ConstraintCount() != 0 {
		t.Errorf("ConstraintCount() = %d after rejected binding, want 0", p.ConstraintCount())
	}
}

func TestAddConstraint_NilConstraint(t *testing.T) {
	p := NewProblem()

	if err := p.AddConstraint(nil); err == nil {
		t.Fatal("expected error for nil constraint")
	}
}

func TestValidate_EmptyDomain(t *testing.T) {
	p := NewProblem()
	if _, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain()); err != nil {
		t.Fatalf("AddVariable failed: %v", err)
	}

	if err := p.Validate(); !errors.Is(err, ErrEmptyDomain) {
		t.Fatalf("Validate() = %v, want ErrEmptyDomain", err)
	}
}

func TestValidate_WellFormed(t *testing.T) {
	p := NewProblem()
	if _, err := p.AddVariable(&namedPayload{name: "x"}, NewDomain(1, 2)); err != nil {
		t.Fatalf("AddVariable failed: %v", err)
	}

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

// TestProblem_Clone verifies a clone solves identically while sharing no
// constraint or domain state with the original.
func TestProblem_Clone(t *testing.T) {
	p := NewProblem()
	payloads := named("x", "y")
	if _, err := p.AddVariables(payloads, NewDomain(1, 2, 3)); err != nil {
		t.Fatalf("AddVariables failed: %v", err)
	}
	less := mustFunc(t, "less", func(values []int, _ []Payload) bool {
		return values[0] < values[1]
	})
	if err := p.AddConstraint(less, payloads...); err != nil {
		t.Fatalf("AddConstraint failed: %v", err)
	}

	clone := p.Clone()
	if clone.VariableCount() != 2 || clone.ConstraintCount() != 1 {
		t.Fatalf("clone shape = (%d vars, %d constraints), want (2, 1)",
			clone.VariableCount(), clone.ConstraintCount())
	}

	// Payloads are shared by reference; domains are not.
	if clone.Variable("x").Payload() != p.Variable("x").Payload() {
		t.Error("clone does not share payload references")
	}
	if clone.Variable("x").Domain() == p.Variable("x").Domain() {
		t.Error("clone shares domain instance with original")
	}

	ctx := context.Background()
	orig, err := NewSolver(p).Solve(ctx, 0)
	if err != nil {
		t.Fatalf("Solve(original) failed: %v", err)
	}
	copied, err := NewSolver(clone).Solve(ctx, 0)
	if err != nil {
		t.Fatalf("Solve(clone) failed: %v", err)
	}
	if !sameSolutionSequence(orig, copied) {
		t.Fatal("clone enumerates a different solution sequence")
	}
}

// TestProblem_CloneCopiesConstraints verifies Clone goes through the
// constraints' Clone capability rather than aliasing them.
func TestProblem_CloneCopiesConstraints(t *testing.T) {
	p := NewProblem()
	payloads := named("x")
	if _, err := p.AddVariables(payloads, NewDomain(1)); err != nil {
		t.Fatalf("AddVariables failed: %v", err)
	}
	inner := mustFunc(t, "alwaysTrue", func([]int, []Payload) bool { return true })
	if err := p.AddConstraint(inner, payloads...); err != nil {
		t.Fatalf("AddConstraint failed: %v", err)
	}

	clone := p.Clone()
	if clone.constraints[0].constraint == p.constraints[0].constraint {
		t.Fatal("clone aliases the original constraint instance")
	}
}

func TestProblem_String(t *testing.T) {
	p := NewProblem()
	if _, err := p.AddVariables(named("a", "b"), NewDomain(0, 1)); err != nil {
		t.Fatalf("AddVariables failed: %v", err)
	}

	want := "Problem{variables: 2, constraints: 0}"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
