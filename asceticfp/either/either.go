// Package either holds Either[L, R], a value that is Left(L) or Right(R).
//
// L is the context that stays fixed along a Bind chain, usually an error
// type of the calling module. R is the value that varies step to step.
package either

import "fmt"

type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Wrap lifts r into Right.
func Wrap[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Bind returns the same Left untouched without calling f, or f(r) for Right(r).
func Bind[L, R, O any](e Either[L, R], f func(R) Either[L, O]) Either[L, O] {
	if !e.isRight {
		return Left[L, O](e.left)
	}
	return f(e.right)
}

func Map[L, R, O any](e Either[L, R], f func(R) O) Either[L, O] {
	return Bind(e, func(r R) Either[L, O] { return Right[L](f(r)) })
}

func MapLeft[L, R, O any](e Either[L, R], f func(L) O) Either[O, R] {
	if e.isRight {
		return Right[O](e.right)
	}
	return Left[O, R](f(e.left))
}

// Fold collapses e by calling exactly one of onLeft or onRight.
func Fold[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
