package operators

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samples covers signs, zero, fractions and large magnitudes.
var samples = []float64{-1e6, -100, -12.5, -2, -1, -0.5, -1e-3, 0, 1e-3, 0.5, 1, 2, 12.5, 100, 1e6}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 6.0, Mul(2.0, 3.0))
	assert.Equal(t, 5.0, Add(2.0, 3.0))
	assert.Equal(t, -2.0, Neg(2.0))
	assert.Equal(t, 3.5, ID(3.5))

	for _, a := range samples {
		for _, b := range samples {
			assert.Equal(t, Add(a, b), Add(b, a), "add(%g, %g)", a, b)
			assert.Equal(t, Mul(a, b), Mul(b, a), "mul(%g, %g)", a, b)
		}
		assert.Equal(t, a, Neg(Neg(a)))
		assert.Equal(t, a, ID(a))
	}
}

func TestComparison(t *testing.T) {
	assert.True(t, LT(1.0, 2.0))
	assert.False(t, LT(2.0, 1.0))
	assert.False(t, LT(1.0, 1.0))

	assert.True(t, EQ(1.0, 1.0))
	assert.False(t, EQ(1.0, 1.0+1e-12))

	assert.Equal(t, 3.0, Max(3.0, 2.0))
	assert.Equal(t, 3.0, Max(2.0, 3.0))
}

func TestMaxTieReturnsSecond(t *testing.T) {
	// +0 and -0 compare equal, so the sign tells which argument came back.
	negZero := math.Copysign(0, -1)
	assert.True(t, math.Signbit(Max(0.0, negZero)))
	assert.False(t, math.Signbit(Max(negZero, 0.0)))
}

func TestIsClose(t *testing.T) {
	for _, a := range samples {
		assert.True(t, IsClose(a, a), "is_close(%g, %g)", a, a)
	}

	tests := []struct {
		a, b float64
		want bool
	}{
		{1.0, 1.005, true},
		{1.0, 0.995, true},
		{1.0, 1.01, false},
		{1.0, 1.02, false},
		{-3.0, 3.0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsClose(tt.a, tt.b), "is_close(%g, %g)", tt.a, tt.b)
		assert.Equal(t, tt.want, IsClose(tt.b, tt.a), "is_close(%g, %g)", tt.b, tt.a)
	}
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0.0))

	for a := -30.0; a <= 30.0; a += 0.25 {
		s := Sigmoid(a)
		assert.Greater(t, s, 0.0, "sigmoid(%g)", a)
		assert.Less(t, s, 1.0, "sigmoid(%g)", a)
		assert.True(t, IsClose(s, 1-Sigmoid(-a)), "symmetry at %g", a)
	}

	// Large magnitudes saturate without overflowing to NaN.
	for _, a := range []float64{-1e6, -1000, 1000, 1e6} {
		s := Sigmoid(a)
		assert.False(t, math.IsNaN(s), "sigmoid(%g)", a)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
	assert.Equal(t, 1.0, Sigmoid(1000.0))
	assert.Equal(t, 0.0, Sigmoid(-1000.0))
}

func TestSigmoidMonotonic(t *testing.T) {
	prev := Sigmoid(-20.0)
	for a := -19.5; a <= 20.0; a += 0.5 {
		s := Sigmoid(a)
		assert.GreaterOrEqual(t, s, prev, "sigmoid(%g)", a)
		prev = s
	}
}

func TestReLU(t *testing.T) {
	for _, a := range samples {
		r := ReLU(a)
		assert.GreaterOrEqual(t, r, 0.0)
		if a >= 0 {
			assert.Equal(t, a, r)
		} else {
			assert.Equal(t, 0.0, r)
		}
	}
}

func TestExpLog(t *testing.T) {
	assert.Equal(t, 1.0, Exp(0.0))
	assert.InDelta(t, math.E, Exp(1.0), 1e-12)

	for _, a := range []float64{1e-3, 0.1, 0.5, 1, 2, 10, 100} {
		l, err := Log(a)
		require.NoError(t, err)
		assert.True(t, IsClose(Exp(l), a), "exp(log(%g)) = %g", a, Exp(l))
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		input float64
		call  func() (float64, error)
	}{
		{"log zero", "log", 0, func() (float64, error) { return Log(0.0) }},
		{"log negative", "log", -1, func() (float64, error) { return Log(-1.0) }},
		{"inv zero", "inv", 0, func() (float64, error) { return Inv(0.0) }},
		{"log_back zero", "log_back", 0, func() (float64, error) { return LogBack(0.0, 1.0) }},
		{"inv_back zero", "inv_back", 0, func() (float64, error) { return InvBack(0.0, 1.0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDomain))

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.op, de.Op)
			assert.Equal(t, tt.input, de.Input)
			assert.Contains(t, err.Error(), tt.op)
		})
	}
}

func TestInv(t *testing.T) {
	v, err := Inv(4.0)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	v, err = Inv(-0.5)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)
}

func TestBackward(t *testing.T) {
	assert.Equal(t, 5.0, ReLUBack(1.0, 5.0))
	assert.Equal(t, 0.0, ReLUBack(-1.0, 5.0))
	assert.Equal(t, 5.0, ReLUBack(0.0, 5.0), "x == 0 is the active branch")

	v, err := InvBack(2.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, -0.25, v)

	v, err = LogBack(2.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	assert.Equal(t, 3.0, ExpBack(0.0, 3.0))
	assert.Equal(t, 0.25, SigmoidBack(0.0, 1.0))
}

func TestFloat32(t *testing.T) {
	assert.Equal(t, float32(0.5), Sigmoid(float32(0)))
	assert.Equal(t, float32(1), Exp(float32(0)))
	assert.InDelta(t, float64(Sigmoid(2.0)), float64(Sigmoid(float32(2))), 1e-6)
	assert.InDelta(t, math.E, float64(Exp(float32(1))), 1e-6)

	l, err := Log(float32(8))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(8), float64(l), 1e-6)

	_, err = Log(float32(0))
	assert.ErrorIs(t, err, ErrDomain)

	assert.True(t, IsClose(float32(1), float32(1.005)))
	assert.Equal(t, float32(0), ReLU(float32(-3)))
}
