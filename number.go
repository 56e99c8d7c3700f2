package assertly

import (
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of types the numeric families accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// quantity is a number derived from T operands. Integers are held exactly in
// a big.Int so that |a-b| and products of operands cannot wrap; floats stay
// in T.
type quantity[T Number] struct {
	i *big.Int
	f T
}

func exact[T Number](x T) quantity[T] {
	v := reflect.ValueOf(x)
	switch {
	case v.CanInt():
		return quantity[T]{i: big.NewInt(v.Int())}
	case v.CanUint():
		return quantity[T]{i: new(big.Int).SetUint64(v.Uint())}
	}
	return quantity[T]{f: x}
}

func (q quantity[T]) String() string {
	if q.i != nil {
		return q.i.String()
	}
	return formatValue(q.f)
}

// holds reports whether q o x.
func (q quantity[T]) holds(o op, x T) bool {
	return compareQuantity(o, q, exact(x))
}

func compareQuantity[T Number](o op, a, b quantity[T]) bool {
	if a.i == nil {
		return compareOrdered(o, a.f, b.f)
	}
	return compareOrdered(o, a.i.Cmp(b.i), 0)
}

// absDiff returns |a-b|.
func absDiff[T Number](a, b T) quantity[T] {
	qa, qb := exact(a), exact(b)
	if qa.i == nil {
		if a > b {
			return quantity[T]{f: a - b}
		}
		return quantity[T]{f: b - a}
	}
	d := new(big.Int).Sub(qa.i, qb.i)
	return quantity[T]{i: d.Abs(d)}
}

// abs returns |x|.
func abs[T Number](x T) quantity[T] {
	var zero T
	return absDiff(x, zero)
}

func mulQuantity[T Number](a, b quantity[T]) quantity[T] {
	if a.i == nil {
		return quantity[T]{f: a.f * b.f}
	}
	return quantity[T]{i: new(big.Int).Mul(a.i, b.i)}
}

func minQuantity[T Number](a, b quantity[T]) quantity[T] {
	if compareQuantity(opLe, a, b) {
		return a
	}
	return b
}
