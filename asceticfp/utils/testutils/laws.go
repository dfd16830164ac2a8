package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Monad describes an endomorphic monad instance M over values of T, enough
// to state the three monad laws.
type Monad[T, M any] struct {
	Wrap func(T) M
	Bind func(M, func(T) M) M
}

// LeftIdentity checks Wrap(x) >>= f == f(x).
func (m Monad[T, M]) LeftIdentity(t *testing.T, x T, f func(T) M) bool {
	t.Helper()
	return assert.Equal(t, f(x), m.Bind(m.Wrap(x), f), "left identity for %v", x)
}

// RightIdentity checks ma >>= Wrap == ma.
func (m Monad[T, M]) RightIdentity(t *testing.T, ma M) bool {
	t.Helper()
	return assert.Equal(t, ma, m.Bind(ma, m.Wrap), "right identity for %v", ma)
}

// Associativity checks (ma >>= f) >>= g == ma >>= (x => f(x) >>= g).
func (m Monad[T, M]) Associativity(t *testing.T, ma M, f, g func(T) M) bool {
	t.Helper()
	lhs := m.Bind(m.Bind(ma, f), g)
	rhs := m.Bind(ma, func(x T) M { return m.Bind(f(x), g) })
	return assert.Equal(t, lhs, rhs, "associativity for %v", ma)
}

// Check runs all three laws over every sample.
func (m Monad[T, M]) Check(t *testing.T, xs []T, mas []M, f, g func(T) M) {
	t.Helper()
	for _, x := range xs {
		m.LeftIdentity(t, x, f)
		m.LeftIdentity(t, x, g)
	}
	for _, ma := range mas {
		m.RightIdentity(t, ma)
		m.Associativity(t, ma, f, g)
	}
}

// CheckMonoid verifies identity on every sample and associativity on every
// ordered triple of samples.
func CheckMonoid[W any](t *testing.T, m interface {
	Empty() W
	Combine(a, b W) W
}, samples ...W) {
	t.Helper()
	for _, x := range samples {
		assert.Equal(t, x, m.Combine(m.Empty(), x), "left identity for %v", x)
		assert.Equal(t, x, m.Combine(x, m.Empty()), "right identity for %v", x)
	}
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				assert.Equal(t,
					m.Combine(m.Combine(a, b), c),
					m.Combine(a, m.Combine(b, c)),
					"associativity for %v, %v, %v", a, b, c)
			}
		}
	}
}
