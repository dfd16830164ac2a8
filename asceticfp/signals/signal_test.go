package signals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = errors.New("sample")

type recorder[T any] struct {
	events []Event[T]
}

func (r *recorder[T]) observe(e Event[T]) {
	r.events = append(r.events, e)
}

func TestEvent(t *testing.T) {
	t.Run("next", func(t *testing.T) {
		e := Next(1)
		assert.True(t, e.IsNext())
		assert.False(t, e.IsFailure())
		v, ok := e.Value()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.NoError(t, e.Err())
		assert.Equal(t, "Next(1)", e.String())
	})

	t.Run("failure", func(t *testing.T) {
		e := Failure[int](errSample)
		assert.True(t, e.IsFailure())
		_, ok := e.Value()
		assert.False(t, ok)
		assert.Same(t, errSample, e.Err())
		assert.Equal(t, "Failure(sample)", e.String())
	})

	t.Run("failure with nil error", func(t *testing.T) {
		assert.Equal(t, ErrNilFailure, Failure[int](nil).Err())
	})
}

func TestLiteral(t *testing.T) {
	t.Run("replays value synchronously on subscribe", func(t *testing.T) {
		r := &recorder[int]{}
		Literal(5).Subscribe(r.observe)
		assert.Equal(t, []Event[int]{Next(5)}, r.events)
	})

	t.Run("replays to every new subscriber", func(t *testing.T) {
		s := Literal("x")
		first, second := &recorder[string]{}, &recorder[string]{}
		s.Subscribe(first.observe)
		s.Subscribe(second.observe)
		assert.Len(t, first.events, 1)
		assert.Len(t, second.events, 1)
	})
}

func TestNewSignal(t *testing.T) {
	t.Run("producer runs once at construction", func(t *testing.T) {
		calls := 0
		s := NewSignal(func(Emitter[int]) { calls++ })
		assert.Equal(t, 1, calls)

		s.Subscribe(func(Event[int]) {})
		s.Subscribe(func(Event[int]) {})
		assert.Equal(t, 1, calls)
	})

	t.Run("emissions before subscribe are dropped", func(t *testing.T) {
		var emitter Emitter[int]
		s := NewSignal(func(e Emitter[int]) {
			e.SendNext(1)
			emitter = e
		})

		r := &recorder[int]{}
		s.Subscribe(r.observe)
		emitter.SendNext(2)
		emitter.SendFailure(errSample)

		assert.Equal(t, []Event[int]{Next(2), Failure[int](errSample)}, r.events)
	})
}

func TestPipe(t *testing.T) {
	t.Run("delivers in emission order", func(t *testing.T) {
		emitter, s := Pipe[int]()
		r := &recorder[int]{}
		s.Subscribe(r.observe)

		emitter.SendNext(3)
		emitter.SendNext(2)
		emitter.SendNext(1)

		assert.Equal(t, []Event[int]{Next(3), Next(2), Next(1)}, r.events)
	})

	t.Run("last subscribe wins", func(t *testing.T) {
		emitter, s := Pipe[int]()
		first, second := &recorder[int]{}, &recorder[int]{}
		s.Subscribe(first.observe)
		emitter.SendNext(1)
		s.Subscribe(second.observe)
		emitter.SendNext(2)

		assert.Equal(t, []Event[int]{Next(1)}, first.events)
		assert.Equal(t, []Event[int]{Next(2)}, second.events)
	})

	t.Run("failure does not terminate", func(t *testing.T) {
		emitter, s := Pipe[int]()
		r := &recorder[int]{}
		s.Subscribe(r.observe)
		emitter.SendFailure(errSample)
		emitter.SendNext(1)
		assert.Equal(t, []Event[int]{Failure[int](errSample), Next(1)}, r.events)
	})

	t.Run("zero emitter is silent", func(t *testing.T) {
		var emitter Emitter[int]
		assert.NotPanics(t, func() { emitter.SendNext(1) })
	})
}

func TestSubscribe_Dispose(t *testing.T) {
	t.Run("detaches observer", func(t *testing.T) {
		emitter, s := Pipe[int]()
		r := &recorder[int]{}
		d := s.Subscribe(r.observe)
		emitter.SendNext(1)
		d.Dispose()
		emitter.SendNext(2)
		assert.Equal(t, []Event[int]{Next(1)}, r.events)
	})

	t.Run("stale handle keeps newer observer", func(t *testing.T) {
		emitter, s := Pipe[int]()
		first, second := &recorder[int]{}, &recorder[int]{}
		stale := s.Subscribe(first.observe)
		s.Subscribe(second.observe)
		stale.Dispose()
		emitter.SendNext(1)
		assert.Empty(t, first.events)
		assert.Equal(t, []Event[int]{Next(1)}, second.events)
	})
}

func TestObserve(t *testing.T) {
	emitter, s := Pipe[int]()
	var values []int
	var errs []error
	s.Observe(func(v int) { values = append(values, v) }, func(err error) { errs = append(errs, err) })

	emitter.SendNext(1)
	emitter.SendFailure(errSample)

	assert.Equal(t, []int{1}, values)
	assert.Equal(t, []error{errSample}, errs)
}

func TestSink_NilCallbacks(t *testing.T) {
	o := Sink[int](nil, nil)
	assert.NotPanics(t, func() {
		o(Next(1))
		o(Failure[int](errSample))
	})
}
