package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/spinopt/anneal"
	"github.com/katalvlaran/spinopt/poly"
)

// ExampleSpin finds the ground state of a 5-spin antiferromagnetic
// chain, H = Σ z_i·z_{i+1}, whose optimum alternates with value −4.
func ExampleSpin() {
	var terms []poly.Term
	labels := []string{"s0", "s1", "s2", "s3", "s4"}
	for i := 0; i < len(labels)-1; i++ {
		terms = append(terms, poly.Term{Vars: []string{labels[i], labels[i+1]}, Coeff: 1})
	}
	model := poly.NewSpin(terms...)

	res, err := anneal.Spin(model,
		anneal.WithNumAnneals(5),
		anneal.WithSeed(7),
	)
	if err != nil {
		fmt.Println("anneal:", err)
		return
	}

	best, err := res.Best()
	if err != nil {
		fmt.Println("best:", err)
		return
	}
	fmt.Println("anneals:", res.Len())
	fmt.Println("best   :", best.Value)

	// Output:
	// anneals: 5
	// best   : -4
}

// ExampleBoolean minimizes a tiny PUBO with a fixed explicit schedule.
func ExampleBoolean() {
	// −x0 − x1 + 2·x0·x1: set exactly one bit, optimum −1.
	model := poly.NewBoolean(
		poly.Term{Vars: []string{"x0"}, Coeff: -1},
		poly.Term{Vars: []string{"x1"}, Coeff: -1},
		poly.Term{Vars: []string{"x0", "x1"}, Coeff: 2},
	)

	res, err := anneal.Boolean(model,
		anneal.WithNumAnneals(3),
		anneal.WithTemperatures(2, 0.1),
		anneal.WithScheduleKind(anneal.Geometric),
		anneal.WithDuration(50),
		anneal.WithSeed(3),
	)
	if err != nil {
		fmt.Println("anneal:", err)
		return
	}

	best, _ := res.Best()
	fmt.Println("best:", best.Value)

	// Output:
	// best: -1
}
