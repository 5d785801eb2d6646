package rotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piotroxp/orb-models/pkg/seed"
)

const delta = 1e-12

func assertMatrixInDelta(t *testing.T, want, got Matrix) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want[i][j], got[i][j], delta, "element (%d,%d)", i, j)
		}
	}
}

func det(m Matrix) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func TestAboutAxes_QuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   [3]float64
		want [3]float64
	}{
		{
			name: "test x quarter turn maps y to z",
			m:    AboutX(math.Pi / 2),
			in:   [3]float64{0, 1, 0},
			want: [3]float64{0, 0, 1},
		},
		{
			name: "test y quarter turn maps z to x",
			m:    AboutY(math.Pi / 2),
			in:   [3]float64{0, 0, 1},
			want: [3]float64{1, 0, 0},
		},
		{
			name: "test z quarter turn maps x to y",
			m:    AboutZ(math.Pi / 2),
			in:   [3]float64{1, 0, 0},
			want: [3]float64{0, 1, 0},
		},
		{
			name: "test rotation axis is fixed",
			m:    AboutZ(1.234),
			in:   [3]float64{0, 0, 1},
			want: [3]float64{0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.in)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.want[i], got[i], delta)
			}
		})
	}
}

func TestAboutAxes_ZeroAngleIsIdentity(t *testing.T) {
	assertMatrixInDelta(t, Identity(), AboutX(0))
	assertMatrixInDelta(t, Identity(), AboutY(0))
	assertMatrixInDelta(t, Identity(), AboutZ(0))
}

func TestFromAngles_MatchesComposition(t *testing.T) {
	alpha, beta, gamma := 0.3, 1.1, 2.9
	want := AboutY(alpha).Mul(AboutX(beta)).Mul(AboutY(gamma))
	assertMatrixInDelta(t, want, FromAngles(alpha, beta, gamma))
}

func TestRandAngles_Ranges(t *testing.T) {
	rng := seed.New(7, 0)
	for i := 0; i < 1000; i++ {
		alpha, beta, gamma := RandAngles(rng)
		assert.GreaterOrEqual(t, alpha, 0.0)
		assert.Less(t, alpha, 2*math.Pi)
		assert.GreaterOrEqual(t, gamma, 0.0)
		assert.Less(t, gamma, 2*math.Pi)
		assert.GreaterOrEqual(t, beta, 0.0)
		assert.LessOrEqual(t, beta, math.Pi)
	}
}

func TestRand_IsProperRotation(t *testing.T) {
	rng := seed.New(42, 0)
	for i := 0; i < 100; i++ {
		m := Rand(rng)
		assertMatrixInDelta(t, Identity(), m.Mul(m.Transpose()))
		assert.InDelta(t, 1.0, det(m), delta)
	}
}

func TestRand_DeterministicForSeed(t *testing.T) {
	first := RandN(seed.New(42, 0), 8)
	second := RandN(seed.New(42, 0), 8)
	assert.Equal(t, first, second)

	other := RandN(seed.New(43, 0), 8)
	assert.NotEqual(t, first, other)
}

func TestApply_PreservesLength(t *testing.T) {
	rng := seed.New(1, 0)
	v := [3]float64{1.5, -2.0, 0.5}
	norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	for i := 0; i < 50; i++ {
		r := Rand(rng).Apply(v)
		assert.InDelta(t, norm, math.Sqrt(r[0]*r[0]+r[1]*r[1]+r[2]*r[2]), 1e-9)
	}
}
