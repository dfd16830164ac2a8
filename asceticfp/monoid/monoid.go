// Package monoid describes types with an identity element and an associative
// combine operation.
//
// Instances must satisfy:
//
//	Combine(Empty(), x) == x == Combine(x, Empty())
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// Combine is not assumed to be commutative.
package monoid

import "github.com/krew-solutions/ascetic-fp-go/asceticfp/option"

type Monoid[W any] interface {
	Empty() W
	Combine(a, b W) W
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Concat folds xs from the left starting at m.Empty().
func Concat[W any](m Monoid[W], xs ...W) W {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

type Sum[N Number] struct{}

func (Sum[N]) Empty() N         { return 0 }
func (Sum[N]) Combine(a, b N) N { return a + b }

type Product[N Number] struct{}

func (Product[N]) Empty() N         { return 1 }
func (Product[N]) Combine(a, b N) N { return a * b }

// All is boolean conjunction.
type All struct{}

func (All) Empty() bool            { return true }
func (All) Combine(a, b bool) bool { return a && b }

// Any is boolean disjunction.
type Any struct{}

func (Any) Empty() bool            { return false }
func (Any) Combine(a, b bool) bool { return a || b }

type String struct{}

func (String) Empty() string              { return "" }
func (String) Combine(a, b string) string { return a + b }

type Slice[E any] struct{}

func (Slice[E]) Empty() []E { return nil }

// Combine never aliases a or b.
func (Slice[E]) Combine(a, b []E) []E {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]E, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// First keeps the leftmost Some.
type First[T any] struct{}

func (First[T]) Empty() option.Option[T] { return option.None[T]() }

func (First[T]) Combine(a, b option.Option[T]) option.Option[T] {
	return a.Or(b)
}

// Last keeps the rightmost Some.
type Last[T any] struct{}

func (Last[T]) Empty() option.Option[T] { return option.None[T]() }

func (Last[T]) Combine(a, b option.Option[T]) option.Option[T] {
	return b.Or(a)
}

// Func is a Monoid assembled from an identity value and a combine function.
// The caller is responsible for the laws.
type Func[W any] struct {
	Identity W
	Append   func(a, b W) W
}

func (f Func[W]) Empty() W         { return f.Identity }
func (f Func[W]) Combine(a, b W) W { return f.Append(a, b) }
