package fspace_test

import (
	"fmt"

	"github.com/katalvlaran/fnspace/fspace"
	"github.com/katalvlaran/fnspace/set"
)

// ExampleFunctionSpace_Lincomb builds x(t) = t and y(t) = 1 on [0, 1] and
// combines them lazily into out = 2x + 3y.
func ExampleFunctionSpace_Lincomb() {
	dom, _ := set.Interval(0, 1)
	sp, _ := fspace.NewFunctionSpace(dom, set.RealNumbers{})

	x, _ := sp.Element(func(args ...any) (any, error) { return args[0], nil })
	y, _ := sp.Element(func(args ...any) (any, error) { return 1.0, nil })

	out := sp.Zero()
	if err := sp.Lincomb(2, x, 3, y, out); err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := out.Call(0.5)
	fmt.Println(v)
	// Output:
	// 4
}

// ExampleElement_Call evaluates one element over a whole point-list batch.
func ExampleElement_Call() {
	dom, _ := set.NewIntervalProd([]float64{0, 0}, []float64{1, 1})
	sp, _ := fspace.NewFunctionSpace(dom, set.RealNumbers{})

	sum, _ := sp.Element(func(args ...any) (any, error) {
		if len(args) == 2 {
			return args[0].(float64) + args[1].(float64), nil
		}
		rows := args[0].([][]float64)
		out := make([]float64, len(rows))
		for i, row := range rows {
			out[i] = row[0] + row[1]
		}

		return out, nil
	})

	single, _ := sum.Call(0.25, 0.25)
	batch, _ := sum.Call([][]float64{{0, 0}, {0.5, 0.5}, {1, 1}})
	fmt.Println(single)
	fmt.Println(batch)
	// Output:
	// 0.5
	// [0 1 2]
}

// ExampleFunctionSpace_Zero shows the constant-zero element.
func ExampleFunctionSpace_Zero() {
	dom, _ := set.Interval(-1, 1)
	sp, _ := fspace.NewFunctionSpace(dom, nil)

	zero := sp.Zero()
	v, _ := zero.Call(0.7)
	fmt.Println(v)
	// Output:
	// 0
}
