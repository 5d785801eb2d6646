// Package rotation generates 3D rotation matrices for data augmentation.
package rotation

import (
	"math"
	"math/rand/v2"
)

// Matrix is a 3x3 rotation matrix in row-major order.
type Matrix [3][3]float64

// Identity returns the identity rotation.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the composition m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var res Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				res[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return res
}

// Transpose returns the transpose of m, which for a rotation is its inverse.
func (m Matrix) Transpose() Matrix {
	var res Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res[i][j] = m[j][i]
		}
	}
	return res
}

// Apply rotates the vector v.
func (m Matrix) Apply(v [3]float64) [3]float64 {
	var res [3]float64
	for i := 0; i < 3; i++ {
		res[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return res
}

// AboutX returns the rotation by angle (radians) around the X axis.
func AboutX(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// AboutY returns the rotation by angle (radians) around the Y axis.
func AboutY(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// AboutZ returns the rotation by angle (radians) around the Z axis.
func AboutZ(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RandAngles draws Euler angles distributed uniformly over rotations:
// alpha and gamma are uniform on [0, 2π), beta = acos(2u−1) so that the
// distribution matches the uniform measure on rotations.
func RandAngles(rng *rand.Rand) (alpha, beta, gamma float64) {
	alpha = 2 * math.Pi * rng.Float64()
	gamma = 2 * math.Pi * rng.Float64()
	beta = math.Acos(2*rng.Float64() - 1)
	return alpha, beta, gamma
}

// FromAngles composes the rotation Y(alpha)·X(beta)·Y(gamma).
func FromAngles(alpha, beta, gamma float64) Matrix {
	return AboutY(alpha).Mul(AboutX(beta)).Mul(AboutY(gamma))
}

// Rand draws a rotation matrix uniformly over rotations.
func Rand(rng *rand.Rand) Matrix {
	return FromAngles(RandAngles(rng))
}

// RandN draws n independent rotation matrices.
func RandN(rng *rand.Rand, n int) []Matrix {
	res := make([]Matrix, n)
	for i := range res {
		res[i] = Rand(rng)
	}
	return res
}
