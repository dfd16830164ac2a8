package signals

import (
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/disposable"
)

// Bind returns a Signal that, on every Subscribe, attaches to s. Each
// upstream Next(v) subscribes the downstream to f(v), so the intermediate
// Signal's own replay applies. Upstream failures are forwarded without
// calling f.
//
// Every upstream Next opens a new intermediate subscription. Downstream sees
// the union of their emissions in delivery order; no ordering is imposed
// when intermediate Signals emit later from elsewhere.
func Bind[T, O any](s *Signal[T], f func(T) *Signal[O]) *Signal[O] {
	return derive(func(downstream Observer[O]) disposable.Disposable {
		return s.Subscribe(func(e Event[T]) {
			v, ok := e.Value()
			if !ok {
				downstream(Failure[O](e.Err()))
				return
			}
			f(v).Subscribe(downstream)
		})
	})
}

// Map is Bind(s, v => Literal(f(v))).
func Map[T, O any](s *Signal[T], f func(T) O) *Signal[O] {
	return Bind(s, func(v T) *Signal[O] { return Literal(f(v)) })
}

// Filter drops Next events that fail pred. Failures pass through.
func Filter[T any](s *Signal[T], pred func(T) bool) *Signal[T] {
	return derive(func(downstream Observer[T]) disposable.Disposable {
		return s.Subscribe(func(e Event[T]) {
			if v, ok := e.Value(); ok && !pred(v) {
				return
			}
			downstream(e)
		})
	})
}

// Merge attaches the downstream to every source. Each source keeps its own
// single slot, so merging a Signal takes over its observer.
func Merge[T any](sources ...Source[T]) *Signal[T] {
	return derive(func(downstream Observer[T]) disposable.Disposable {
		disposables := make([]disposable.Disposable, 0, len(sources))
		for _, source := range sources {
			disposables = append(disposables, source.Subscribe(downstream))
		}
		return disposable.NewCompositeDisposable(disposables...)
	})
}
