// Package writer pairs a value with a log accumulated through a Monoid.
//
// Logs are combined strictly in Bind order, earlier entries on the left.
package writer

import (
	"fmt"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/monoid"
)

type Writer[W, T any] struct {
	value T
	log   W
	m     monoid.Monoid[W]
}

// New builds a Writer with an explicit log entry.
func New[W, T any](m monoid.Monoid[W], value T, log W) Writer[W, T] {
	return Writer[W, T]{value: value, log: log, m: m}
}

// Wrap lifts value with an empty log.
func Wrap[W, T any](m monoid.Monoid[W], value T) Writer[W, T] {
	return New(m, value, m.Empty())
}

// Tell records log with no meaningful value.
func Tell[W any](m monoid.Monoid[W], log W) Writer[W, struct{}] {
	return New(m, struct{}{}, log)
}

func (w Writer[W, T]) Value() T {
	return w.value
}

func (w Writer[W, T]) Log() W {
	return w.log
}

func (w Writer[W, T]) Run() (T, W) {
	return w.value, w.log
}

func (w Writer[W, T]) String() string {
	return fmt.Sprintf("(%v, %v)", w.value, w.log)
}

// Bind evaluates f on the value and appends its log after the current one.
// The log of w is never inspected.
func Bind[W, T, O any](w Writer[W, T], f func(T) Writer[W, O]) Writer[W, O] {
	next := f(w.value)
	return Writer[W, O]{
		value: next.value,
		log:   w.m.Combine(w.log, next.log),
		m:     w.m,
	}
}

func Map[W, T, O any](w Writer[W, T], f func(T) O) Writer[W, O] {
	return Writer[W, O]{value: f(w.value), log: w.log, m: w.m}
}

// Then sequences next after w, keeping both logs and next's value.
func Then[W, T, O any](w Writer[W, T], next Writer[W, O]) Writer[W, O] {
	return Bind(w, func(T) Writer[W, O] { return next })
}

// Listen exposes the accumulated log alongside the value.
func Listen[W, T any](w Writer[W, T]) Writer[W, Listened[W, T]] {
	return Writer[W, Listened[W, T]]{
		value: Listened[W, T]{Value: w.value, Log: w.log},
		log:   w.log,
		m:     w.m,
	}
}

type Listened[W, T any] struct {
	Value T
	Log   W
}
