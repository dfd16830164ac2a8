package signals

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNilFailure = errors.New("signals: failure with nil error")

// Event is either Next(value) or Failure(err). Events are immutable.
type Event[T any] struct {
	value   T
	err     error
	failure bool
}

func Next[T any](v T) Event[T] {
	return Event[T]{value: v}
}

// Failure never carries a nil error; nil is replaced by ErrNilFailure.
func Failure[T any](err error) Event[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Event[T]{err: err, failure: true}
}

func (e Event[T]) IsNext() bool {
	return !e.failure
}

func (e Event[T]) IsFailure() bool {
	return e.failure
}

func (e Event[T]) Value() (T, bool) {
	return e.value, !e.failure
}

func (e Event[T]) Err() error {
	return e.err
}

func (e Event[T]) String() string {
	if e.failure {
		return fmt.Sprintf("Failure(%v)", e.err)
	}
	return fmt.Sprintf("Next(%v)", e.value)
}
