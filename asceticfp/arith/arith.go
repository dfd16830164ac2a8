// Package arith holds the arithmetic steps used by the playground pages.
// Each step is shaped for one of the containers so that chains of them
// exercise Bind.
package arith

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/either"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/monoid"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/option"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/result"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/writer"
)

var ErrDivisionByZero = errors.New("arith: division by zero")

// Error is the Left side of the Either steps.
type Error struct {
	Op      string
	Operand float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("arith: cannot %s by %v", e.Op, e.Operand)
}

// Divide returns None when by is zero.
func Divide(by float64) func(float64) option.Option[float64] {
	return func(x float64) option.Option[float64] {
		if by == 0 {
			return option.None[float64]()
		}
		return option.Some(x / by)
	}
}

func SafeDivide(by float64) func(float64) result.Result[float64] {
	return func(x float64) result.Result[float64] {
		if by == 0 {
			return result.Failure[float64](errors.Wrapf(ErrDivisionByZero, "%v / %v", x, by))
		}
		return result.Success(x / by)
	}
}

func CheckedDivide(by float64) func(float64) either.Either[*Error, float64] {
	return func(x float64) either.Either[*Error, float64] {
		if by == 0 {
			return either.Left[*Error, float64](&Error{Op: "divide", Operand: by})
		}
		return either.Right[*Error](x / by)
	}
}

type Step = func(float64) writer.Writer[string, float64]

func logged(verb string, n float64, op func(float64) float64) Step {
	return func(x float64) writer.Writer[string, float64] {
		return writer.New[string](monoid.String{}, op(x), fmt.Sprintf("%s %v ", verb, n))
	}
}

func Add(n float64) Step {
	return logged("added", n, func(x float64) float64 { return x + n })
}

func Multiply(n float64) Step {
	return logged("multiplied", n, func(x float64) float64 { return x * n })
}

func Subtract(n float64) Step {
	return logged("subtracted", n, func(x float64) float64 { return x - n })
}

func DivideBy(n float64) Step {
	return logged("divided", n, func(x float64) float64 { return x / n })
}

// Run binds steps left to right starting from start with an empty log.
func Run(start float64, steps ...Step) writer.Writer[string, float64] {
	w := writer.Wrap[string](monoid.String{}, start)
	for _, step := range steps {
		w = writer.Bind(w, step)
	}
	return w
}
