package deferred

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/disposable"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/option"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/result"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/signals"
)

/**
* One-shot deferred value in the spirit of Promises/A+:
* - https://promisesaplus.com/
*
* A DeferredImp settles once. Later Resolve or Reject calls are ignored.
* Handlers registered after settlement run immediately.
**/

func Noop[T, R any](_ T) (R, error) {
	var zero R
	return zero, nil
}

type nextDeferred interface {
	resolveAny(any)
	rejectAny(error)
	OccurredErr() error
}

type handler[T any] struct {
	onSuccess func(T) (any, error)
	onError   func(error) (any, error)
	next      nextDeferred
}

type DeferredImp[T any] struct {
	outcome     option.Option[result.Result[T]]
	occurredErr error
	handlers    []handler[T]
}

func New[T any]() *DeferredImp[T] {
	return &DeferredImp[T]{}
}

// Resolved returns a Deferred already settled with v. It is the monadic Wrap.
func Resolved[T any](v T) *DeferredImp[T] {
	d := New[T]()
	d.Resolve(v)
	return d
}

func Rejected[T any](err error) *DeferredImp[T] {
	d := New[T]()
	d.Reject(err)
	return d
}

func (d *DeferredImp[T]) resolveAny(v any) {
	var t T
	if v != nil {
		t = v.(T)
	}
	d.Resolve(t)
}

func (d *DeferredImp[T]) rejectAny(err error) {
	d.Reject(err)
}

func (d *DeferredImp[T]) Resolve(value T) {
	d.settle(result.Success(value))
}

func (d *DeferredImp[T]) Reject(err error) {
	d.settle(result.Failure[T](err))
}

func (d *DeferredImp[T]) settle(r result.Result[T]) {
	if d.outcome.IsSome() {
		return
	}
	d.outcome = option.Some(r)
	for _, h := range d.handlers {
		d.runHandler(h, r)
	}
}

// Outcome is None while pending.
func (d *DeferredImp[T]) Outcome() option.Option[result.Result[T]] {
	return d.outcome
}

func (d *DeferredImp[T]) IsPending() bool {
	return d.outcome.IsNone()
}

func (d *DeferredImp[T]) addHandler(h handler[T]) {
	d.handlers = append(d.handlers, h)
	if r, ok := d.outcome.Get(); ok {
		d.runHandler(h, r)
	}
}

func (d *DeferredImp[T]) Then(onSuccess func(T) (any, error), onError func(error) (any, error)) Deferred[any] {
	next := New[any]()
	d.addHandler(handler[T]{
		onSuccess: onSuccess,
		onError:   onError,
		next:      next,
	})
	return next
}

// Then registers typed callbacks for success and error cases.
//
//   - If onSuccess returns a value, next deferred is resolved with it.
//   - If onSuccess returns an error, next deferred is rejected with it.
//   - If onError returns a value, next deferred is resolved with it (recovery).
//   - If onError returns an error, next deferred is rejected with it.
func Then[T, R any](d *DeferredImp[T], onSuccess func(T) (R, error), onError func(error) (R, error)) *DeferredImp[R] {
	next := New[R]()
	d.addHandler(handler[T]{
		onSuccess: func(v T) (any, error) { return onSuccess(v) },
		onError:   func(err error) (any, error) { return onError(err) },
		next:      next,
	})
	return next
}

// Bind settles the returned Deferred with whatever f(v) settles with.
// A rejection skips f and is passed on unchanged.
func Bind[T, O any](d *DeferredImp[T], f func(T) *DeferredImp[O]) *DeferredImp[O] {
	next := New[O]()
	Then(d, func(v T) (any, error) {
		Then(f(v), func(o O) (any, error) {
			next.Resolve(o)
			return nil, nil
		}, func(err error) (any, error) {
			next.Reject(err)
			return nil, nil
		})
		return nil, nil
	}, func(err error) (any, error) {
		next.Reject(err)
		return nil, nil
	})
	return next
}

func Map[T, O any](d *DeferredImp[T], f func(T) O) *DeferredImp[O] {
	return Bind(d, func(v T) *DeferredImp[O] { return Resolved(f(v)) })
}

func (d *DeferredImp[T]) runHandler(h handler[T], r result.Result[T]) {
	var (
		out any
		err error
	)
	if v, failure := r.Get(); failure == nil {
		out, err = h.onSuccess(v)
	} else {
		out, err = h.onError(failure)
	}
	if err == nil {
		h.next.resolveAny(out)
	} else {
		d.occurredErr = multierror.Append(d.occurredErr, err)
		h.next.rejectAny(err)
	}
}

// OccurredErr collects every error returned by handlers down the chain.
func (d *DeferredImp[T]) OccurredErr() error {
	err := d.occurredErr
	for _, h := range d.handlers {
		nestedErr := h.next.OccurredErr()
		if nestedErr != nil {
			err = multierror.Append(err, nestedErr)
		}
	}
	return err
}

// FromSignal settles on the first event s delivers, then detaches.
// Subscribing replaces the observer currently attached to s.
func FromSignal[T any](s *signals.Signal[T]) *DeferredImp[T] {
	d := New[T]()
	settled := false
	var sub disposable.Disposable
	sub = s.Subscribe(func(e signals.Event[T]) {
		if settled {
			return
		}
		settled = true
		if v, ok := e.Value(); ok {
			d.Resolve(v)
		} else {
			d.Reject(e.Err())
		}
		if sub != nil {
			sub.Dispose()
		}
	})
	if settled {
		sub.Dispose()
	}
	return d
}

func All[T any](deferreds []Deferred[T]) *DeferredImp[[]T] {
	combined := New[[]T]()

	if len(deferreds) == 0 {
		combined.Resolve([]T{})
		return combined
	}

	count := len(deferreds)
	values := make([]T, count)
	resolvedCount := 0

	for i, d := range deferreds {
		i := i
		d.Then(func(value T) (any, error) {
			values[i] = value
			resolvedCount++
			if resolvedCount == count {
				combined.Resolve(values)
			}
			return nil, nil
		}, func(err error) (any, error) {
			combined.Reject(err)
			return nil, nil
		})
	}

	return combined
}
