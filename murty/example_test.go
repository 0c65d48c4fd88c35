package murty_test

import (
	"fmt"

	"github.com/arfken-labs/mht/assign"
	"github.com/arfken-labs/mht/murty"
)

// ExampleQueue_Pop shows the two cheapest solutions to a small assignment
// problem, popped in non-decreasing cost order.
func ExampleQueue_Pop() {
	q := murty.New[string]()
	q.Add("cluster-1", []assign.Arc{
		{Row: 0, Col: 0, Cost: 9},
		{Row: 0, Col: 1, Cost: 2},
		{Row: 1, Col: 0, Cost: 6},
		{Row: 1, Col: 1, Cost: 4},
	})

	for i := 0; i < 2; i++ {
		res, ok, err := q.Pop()
		if err != nil || !ok {
			break
		}
		fmt.Printf("solution %d: cost=%g handle=%s\n", i+1, res.Cost, res.Handle)
	}
	// Output:
	// solution 1: cost=8 handle=cluster-1
	// solution 2: cost=13 handle=cluster-1
}
