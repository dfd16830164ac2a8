package signals

import (
	"github.com/google/uuid"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/disposable"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/option"
)

type subscription[T any] struct {
	id       uuid.UUID
	observer Observer[T]
}

// Signal is a push-based event source with a single observer slot.
// Subscribe replaces the attached observer; there is no multicast.
//
// A Signal is not safe for concurrent use. All delivery happens on the
// goroutine that emits or subscribes.
type Signal[T any] struct {
	retained option.Option[T]
	slot     *subscription[T]

	// connect is set on derived signals and runs on every Subscribe,
	// attaching to the upstream signals with emit as the downstream.
	connect func(downstream Observer[T]) disposable.Disposable
}

// Literal returns a Signal that replays v to every new subscriber.
func Literal[T any](v T) *Signal[T] {
	return &Signal[T]{retained: option.Some(v)}
}

// NewSignal runs producer once, before returning, with an Emitter that
// forwards to whichever observer is attached at emission time. Emissions
// made while no observer is attached are dropped.
func NewSignal[T any](producer func(Emitter[T])) *Signal[T] {
	s := &Signal[T]{}
	producer(Emitter[T]{forward: s.emit})
	return s
}

// Pipe returns a hot Signal and the Emitter that drives it.
func Pipe[T any]() (Emitter[T], *Signal[T]) {
	s := &Signal[T]{}
	return Emitter[T]{forward: s.emit}, s
}

func derive[T any](connect func(downstream Observer[T]) disposable.Disposable) *Signal[T] {
	return &Signal[T]{connect: connect}
}

// Subscribe attaches observer, replacing any previous one.
//
// A Literal delivers Next(value) to observer before it is stored. A derived
// Signal stores observer first and then attaches to its upstream, which may
// deliver synchronously.
//
// Disposing the returned handle detaches observer only while it is still
// the attached one.
func (s *Signal[T]) Subscribe(observer Observer[T]) disposable.Disposable {
	sub := &subscription[T]{id: uuid.New(), observer: observer}
	detach := disposable.NewDisposable(func() { s.detach(sub.id) })

	if v, ok := s.retained.Get(); ok {
		observer(Next(v))
	}
	s.slot = sub

	if s.connect == nil {
		return detach
	}
	upstream := s.connect(s.emit)
	return disposable.NewCompositeDisposable(upstream, detach)
}

// Observe is Subscribe(Sink(onNext, onFailure)).
func (s *Signal[T]) Observe(onNext func(T), onFailure func(error)) disposable.Disposable {
	return s.Subscribe(Sink(onNext, onFailure))
}

func (s *Signal[T]) emit(e Event[T]) {
	if s.slot != nil {
		s.slot.observer(e)
	}
}

func (s *Signal[T]) detach(id uuid.UUID) {
	if s.slot != nil && s.slot.id == id {
		s.slot = nil
	}
}
