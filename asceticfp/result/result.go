package result

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/either"
)

var ErrNilFailure = errors.New("result: failure with nil error")

// Result is Success(T) or Failure(error). It behaves like
// either.Either[error, T] with the error side fixed.
type Result[T any] struct {
	value T
	err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure never holds a nil error; nil is replaced by ErrNilFailure.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{err: err}
}

func Wrap[T any](v T) Result[T] {
	return Success(v)
}

// FromPair adapts the conventional (value, error) return.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// Try runs fn and turns both a returned error and a panic into a Failure.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Failure[T](errors.Wrap(err, "result: recovered panic"))
				return
			}
			r = Failure[T](errors.Errorf("result: recovered panic: %v", p))
		}
	}()
	return FromPair(fn())
}

func FromEither[T any](e either.Either[error, T]) Result[T] {
	return either.Fold(e, Failure[T], Success[T])
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r Result[T]) ToEither() either.Either[error, T] {
	if r.err != nil {
		return either.Left[error, T](r.err)
	}
	return either.Right[error](r.value)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// Bind passes a Failure through unchanged without calling f.
func Bind[T, O any](r Result[T], f func(T) Result[O]) Result[O] {
	if r.err != nil {
		return Result[O]{err: r.err}
	}
	return f(r.value)
}

func Map[T, O any](r Result[T], f func(T) O) Result[O] {
	return Bind(r, func(v T) Result[O] { return Success(f(v)) })
}

// Apply runs the function held by fn against the value held by r.
// A failure in fn wins over a failure in r.
func Apply[T, O any](r Result[T], fn Result[func(T) O]) Result[O] {
	if fn.err != nil {
		return Result[O]{err: fn.err}
	}
	return Map(r, fn.value)
}

// Collect returns all values in order, or the first Failure.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.err != nil {
			return Result[[]T]{err: r.err}
		}
		values = append(values, r.value)
	}
	return Success(values)
}
