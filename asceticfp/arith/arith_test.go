package arith

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/ascetic-fp-go/asceticfp/either"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/option"
	"github.com/krew-solutions/ascetic-fp-go/asceticfp/result"
)

func TestDivide(t *testing.T) {
	t.Run("chained", func(t *testing.T) {
		got := option.Chain(option.Some(16.0), Divide(2), Divide(3), Divide(2))
		require.True(t, got.IsSome())
		assert.InDelta(t, 4.0/3.0, got.Unwrap(), 1e-9)
	})

	t.Run("zero anywhere yields none", func(t *testing.T) {
		assert.True(t, option.Chain(option.Some(16.0), Divide(2), Divide(0), Divide(2)).IsNone())
		assert.True(t, option.Chain(option.Some(16.0), Divide(0)).IsNone())
	})
}

func TestSafeDivide(t *testing.T) {
	r := result.Bind(result.Bind(result.Wrap(10.0), SafeDivide(2)), SafeDivide(5))
	assert.Equal(t, result.Success(1.0), r)

	failed := result.Bind(result.Bind(result.Wrap(10.0), SafeDivide(0)), SafeDivide(5))
	require.True(t, failed.IsFailure())
	assert.Equal(t, ErrDivisionByZero, errors.Cause(failed.Err()))
	assert.Equal(t, "10 / 0: arith: division by zero", failed.Err().Error())
}

func TestCheckedDivide(t *testing.T) {
	ok := either.Bind(either.Wrap[*Error](9.0), CheckedDivide(3))
	assert.Equal(t, either.Right[*Error](3.0), ok)

	bad := either.Bind(either.Bind(either.Wrap[*Error](9.0), CheckedDivide(0)), CheckedDivide(3))
	l, isLeft := bad.LeftValue()
	require.True(t, isLeft)
	assert.Equal(t, "arith: cannot divide by 0", l.Error())
}

func TestRun(t *testing.T) {
	value, log := Run(1, Add(3), Multiply(5), Subtract(6), DivideBy(7)).Run()
	assert.Equal(t, 2.0, value)
	assert.Equal(t, "added 3 multiplied 5 subtracted 6 divided 7 ", log)
}
