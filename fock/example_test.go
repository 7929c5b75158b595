package fock_test

import (
	"fmt"

	"github.com/katalvlaran/fockspace/fock"
)

// ExampleParse reads a ket and inspects it.
func ExampleParse() {
	s, err := fock.Parse("|1,0,2>")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	counts, _ := s.Counts()
	fmt.Println(s, s.Modes(), s.Photons(), counts)
	// Output:
	// |1,0,2> 3 3 [1 0 2]
}

// ExampleAll enumerates every placement of 2 photons in 3 modes.
func ExampleAll() {
	for s := range fock.All(3, 2) {
		fmt.Println(s)
	}
	// Output:
	// |2,0,0>
	// |1,1,0>
	// |1,0,1>
	// |0,2,0>
	// |0,1,1>
	// |0,0,2>
}

// ExampleState_Tensor joins two circuits' states.
func ExampleState_Tensor() {
	a := fock.MustParse("|1,0>")
	b := fock.MustParse("|2>")
	ab, _ := a.Tensor(b)
	fmt.Println(ab)
	// Output:
	// |1,0,2>
}

// ExampleState_Slice keeps every second mode.
func ExampleState_Slice() {
	s := fock.MustParse("|1,2,3,4,5>")
	even, _ := s.Slice(0, 5, 2)
	last, _ := s.Slice(-2, 5, 1)
	fmt.Println(even, last)
	// Output:
	// |1,3,5> |4,5>
}

// ExampleState_Separate splits photons of orthogonal polarization.
func ExampleState_Separate() {
	s := fock.MustParse("|{P:H},{P:V},{P:H}>")
	parts, _ := s.Separate()
	for _, p := range parts {
		fmt.Println(p)
	}
	// Output:
	// |1,0,1>
	// |0,1,0>
}
