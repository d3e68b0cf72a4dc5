// This example shows how to use the core building blocks to model and
// solve small finite-domain constraint satisfaction problems.
package main

import (
	"context"
	"fmt"

	"github.com/solverforge/constraint/pkg/constraint"
)

func main() {
	fmt.Println("=== Constraint Engine Examples ===")
	fmt.Println()

	basicProblem()
	scopedConstraints()
	problemCloning()
	parallelSearch()
}

// die is the payload used throughout the examples: identity only.
type die struct {
	name string
}

func (d *die) Key() string { return d.name }

// basicProblem demonstrates registering variables and enumerating the
// unconstrained cross product.
func basicProblem() {
	fmt.Println("1. Two Dice, No Constraints:")

	problem := constraint.NewProblem()
	dice := []constraint.Payload{&die{name: "first"}, &die{name: "second"}}
	if _, err := problem.AddVariables(dice, constraint.NewDomain(1, 2, 3, 4, 5, 6)); err != nil {
		panic(err)
	}

	solutions, err := constraint.NewSolver(problem).Solve(context.Background(), 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("   %d assignments of two six-sided dice\n", len(solutions))
	fmt.Println()
}

// scopedConstraints demonstrates binding predicates to scopes and the
// pruning effect of forward checking.
func scopedConstraints() {
	fmt.Println("2. Two Dice, Sum Is Seven:")

	problem := constraint.NewProblem()
	first := &die{name: "first"}
	second := &die{name: "second"}
	if _, err := problem.AddVariables([]constraint.Payload{first, second}, constraint.NewDomain(1, 2, 3, 4, 5, 6)); err != nil {
		panic(err)
	}

	sumSeven, err := constraint.NewFuncConstraint("sumSeven", func(values []int, _ []constraint.Payload) bool {
		return values[0]+values[1] == 7
	})
	if err != nil {
		panic(err)
	}
	if err := problem.AddConstraint(sumSeven, first, second); err != nil {
		panic(err)
	}

	solutions, err := constraint.NewSolver(problem).Solve(context.Background(), 0)
	if err != nil {
		panic(err)
	}
	for _, s := range solutions {
		fmt.Printf("   %s\n", s)
	}
	fmt.Println()
}

// problemCloning demonstrates branching a configured problem into an
// independent copy.
func problemCloning() {
	fmt.Println("3. Cloning a Problem:")

	problem := constraint.NewProblem()
	d := &die{name: "d"}
	if _, err := problem.AddVariable(d, constraint.NewDomain(1, 2, 3, 4, 5, 6)); err != nil {
		panic(err)
	}
	even, err := constraint.NewFuncConstraint("even", func(values []int, _ []constraint.Payload) bool {
		return values[0]%2 == 0
	})
	if err != nil {
		panic(err)
	}
	if err := problem.AddConstraint(even, d); err != nil {
		panic(err)
	}

	clone := problem.Clone()
	ctx := context.Background()
	original, _ := constraint.NewSolver(problem).Solve(ctx, 0)
	copied, _ := constraint.NewSolver(clone).Solve(ctx, 0)

	fmt.Printf("   original: %d solutions, clone: %d solutions\n", len(original), len(copied))
	fmt.Println()
}

// parallelSearch demonstrates the first-variable split across workers.
func parallelSearch() {
	fmt.Println("4. Parallel Search:")

	problem := constraint.NewProblem()
	dice := []constraint.Payload{&die{name: "a"}, &die{name: "b"}, &die{name: "c"}}
	if _, err := problem.AddVariables(dice, constraint.NewDomain(1, 2, 3, 4, 5, 6)); err != nil {
		panic(err)
	}
	ascending, err := constraint.NewFuncConstraint("ascending", func(values []int, _ []constraint.Payload) bool {
		return values[0] < values[1] && values[1] < values[2]
	})
	if err != nil {
		panic(err)
	}
	if err := problem.AddConstraint(ascending, dice...); err != nil {
		panic(err)
	}

	solver := constraint.NewSolver(problem)
	ctx := context.Background()

	sequential, err := solver.Solve(ctx, 0)
	if err != nil {
		panic(err)
	}
	parallel, err := solver.SolveParallel(ctx, 4, 0)
	if err != nil {
		panic(err)
	}

	fmt.Printf("   sequential: %d solutions, parallel: %d solutions (identical order)\n",
		len(sequential), len(parallel))
}
