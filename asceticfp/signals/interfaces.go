package signals

import (
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/disposable"
)

// Observer receives every Event emitted by the Signal it is attached to.
type Observer[T any] func(Event[T])

// Sink builds an Observer from separate callbacks. A nil callback ignores
// its kind of event.
func Sink[T any](onNext func(T), onFailure func(error)) Observer[T] {
	return func(e Event[T]) {
		if v, ok := e.Value(); ok {
			if onNext != nil {
				onNext(v)
			}
			return
		}
		if onFailure != nil {
			onFailure(e.Err())
		}
	}
}

// Source is anything an Observer can be attached to.
type Source[T any] interface {
	Subscribe(observer Observer[T]) disposable.Disposable
}

// Emitter is the write side of a Signal.
type Emitter[T any] struct {
	forward Observer[T]
}

// Send delivers e synchronously to the currently attached observer, if any.
func (e Emitter[T]) Send(event Event[T]) {
	if e.forward != nil {
		e.forward(event)
	}
}

func (e Emitter[T]) SendNext(v T) {
	e.Send(Next(v))
}

func (e Emitter[T]) SendFailure(err error) {
	e.Send(Failure[T](err))
}
