package assertly_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexshd/assertly"
)

func ExampleAssertEqAsResult() {
	fmt.Println(assertly.AssertEqAsResult(1, 1))
	fmt.Println(assertly.AssertEqAsResult(1, 2))
	// Output:
	// <nil>
	// assertion failed: `AssertEq(left, right)`
	//   left: `1`,
	//  right: `2`
}

func ExampleAssertEq() {
	defer func() {
		fmt.Println(recover())
	}()
	assertly.AssertEq("alfa", "bravo")
	// Output:
	// assertion failed: `AssertEq(left, right)`
	//   left: `"alfa"`,
	//  right: `"bravo"`
}

func ExampleAssureLt() {
	ok, err := assertly.AssureLt(3, 2)
	fmt.Println(ok, err)
	// Output:
	// false <nil>
}

func ExampleAssertFnEqAsResult() {
	err := assertly.AssertFnEqAsResult(strings.TrimSpace, " alfa ", "alfa")
	fmt.Println(err)
	// Output:
	// <nil>
}

func ExampleAssertInDeltaAsResult() {
	fmt.Println(assertly.AssertInDeltaAsResult(10, 13, 2))
	// Output:
	// assertion failed: `AssertInDelta(a, b, delta)`
	//      a: `10`,
	//      b: `13`,
	//  delta: `2`,
	//  |a-b|: `3`
}

func ExampleFailure() {
	err := assertly.AssertSetSubsetAsResult([]string{"read", "admin"}, []string{"read", "write"})

	var f *assertly.Failure
	if errors.As(err, &f) {
		fmt.Println(f.Call)
		for _, field := range f.Fields {
			fmt.Println(field.Label, field.Value)
		}
	}
	// Output:
	// AssertSetSubset(a, b)
	// a [read admin]
	// b [read write]
}

func ExampleMsgWithPair() {
	fmt.Println(assertly.MsgWithPair("AssertSameOwner(left, right)", assertly.Pair{
		Left:  "ann",
		Right: "bob",
	}))
	// Output:
	// assertion failed: `AssertSameOwner(left, right)`
	//   left: `"ann"`,
	//  right: `"bob"`
}

func ExampleMessage() {
	fmt.Println(assertly.Message("AssertPositive(balance)",
		assertly.Field{Label: "balance", Value: -12},
		assertly.Field{Label: "account", Value: "acct-7"},
	))
	// Output:
	// assertion failed: `AssertPositive(balance)`
	//  balance: `-12`,
	//  account: `"acct-7"`
}
