package lorentz

import "math"

// HeadOn assembles the Lorentz boost from the lab frame to the frame where the
// collision is head-on. phi is the half crossing angle in the plane ZS, alpha is
// the angle to the S axis from the X axis in the XY plane.
func HeadOn(alpha, phi float64) Matrix {
	ca, sa := math.Cos(alpha), math.Sin(alpha)
	cp, sp, tp := math.Cos(phi), math.Sin(phi), math.Tan(phi)

	return Matrix{
		{1 / cp, -ca * sp, -tp * sp, -sa * sp},
		{-ca * tp, 1, ca * tp, 0},
		{0, -ca * sp, cp, -sa * sp},
		{-sa * tp, 0, sa * tp, 1},
	}
}

// BuildBoost returns the inverse of HeadOn(alpha, phi), the transform from the
// head-on frame back to the lab frame.
func BuildBoost(alpha, phi float64) (Matrix, error) {
	return HeadOn(alpha, phi).Inverse()
}
