package option

import "fmt"

// Option is either Some (holds a value) or None.
// The zero value is None.
type Option[T any] struct {
	val   T
	valid bool
}

func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Wrap lifts a plain value into the Option monad. It is Some under another name.
func Wrap[T any](val T) Option[T] {
	return Some(val)
}

// FromPointer returns None for a nil pointer, Some(*p) otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNone() bool {
	return !o.valid
}

// Get returns the value and whether it is present, comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.valid
}

// Unwrap panics on None.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("option: Unwrap called on None")
	}
	return o.val
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.valid {
		return o.val
	}
	return def
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.valid {
		return o.val
	}
	return f()
}

func (o Option[T]) UnwrapOrZero() T {
	return o.val
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.valid {
		return o
	}
	return other
}

func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.valid {
		return o
	}
	return f()
}

// Filter keeps the value only if pred holds.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.valid && pred(o.val) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "None"
}

// Bind sequences a dependent computation: None short-circuits and f is not
// called, Some(v) yields f(v).
//
// Go methods cannot introduce type parameters, so the monadic operations are
// free functions. A chain reads inside-out:
//
//	Bind(Bind(Some(16.0), half), third)
func Bind[T, O any](o Option[T], f func(T) Option[O]) Option[O] {
	if !o.valid {
		return None[O]()
	}
	return f(o.val)
}

// Map is Bind(o, v => Wrap(f(v))).
func Map[T, O any](o Option[T], f func(T) O) Option[O] {
	if !o.valid {
		return None[O]()
	}
	return Some(f(o.val))
}

// Apply calls the function held by fn with the value held by o.
// None on either side yields None.
func Apply[T, O any](o Option[T], fn Option[func(T) O]) Option[O] {
	if !fn.valid {
		return None[O]()
	}
	return Map(o, fn.val)
}

func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.valid {
		return None[T]()
	}
	return o.val
}

// Chain folds steps over o with Bind, left to right.
func Chain[T any](o Option[T], steps ...func(T) Option[T]) Option[T] {
	for _, step := range steps {
		o = Bind(o, step)
	}
	return o
}
