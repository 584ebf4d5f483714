// Package lorentz provides the fixed size 4x4 matrix and 4-vector used to move
// collision vertices between the lab frame and the head-on collision frame.
package lorentz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hazeltet845/cmssw/format"
)

// Dim is the matrix dimension. Index 0 is time, 1..3 are x, y, z.
const Dim = 4

const singularTolerance = 1e-15

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("lorentz: singular matrix")

// Matrix is a row-major 4x4 real matrix. It is a value type: assigning or
// returning it copies all entries.
type Matrix [Dim][Dim]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < Dim; i++ {
		m[i][i] = 1
	}
	return m
}

// At returns the entry at row r, column c.
func (m Matrix) At(r, c int) float64 {
	return m[r][c]
}

// Mul returns m*o.
func (m Matrix) Mul(o Matrix) Matrix {
	var res Matrix
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sum := 0.0
			for k := 0; k < Dim; k++ {
				sum += m[r][k] * o[k][c]
			}
			res[r][c] = sum
		}
	}
	return res
}

// Inverse computes the inverse by Gauss-Jordan elimination with partial pivoting.
func (m Matrix) Inverse() (Matrix, error) {
	norm := 0.0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			v := m[r][c]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Matrix{}, fmt.Errorf("%w: non finite entry (%d,%d)", ErrSingular, r, c)
			}
			norm = math.Max(norm, math.Abs(v))
		}
	}

	a := m
	inv := Identity()
	for col := 0; col < Dim; col++ {
		pivot := col
		for r := col + 1; r < Dim; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		p := a[pivot][col]
		if math.Abs(p) <= singularTolerance*norm {
			return Matrix{}, ErrSingular
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		for c := 0; c < Dim; c++ {
			a[col][c] /= p
			inv[col][c] /= p
		}
		for r := 0; r < Dim; r++ {
			f := a[r][col]
			if r == col || f == 0 {
				continue
			}
			for c := 0; c < Dim; c++ {
				a[r][c] -= f * a[col][c]
				inv[r][c] -= f * inv[col][c]
			}
		}
	}
	return inv, nil
}

// Apply multiplies v, taken as the column (T, X, Y, Z), by m.
func (m Matrix) Apply(v Vector) Vector {
	in := [Dim]float64{v.T, v.X, v.Y, v.Z}
	var out [Dim]float64
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r] += m[r][c] * in[c]
		}
	}
	return Vector{X: out[1], Y: out[2], Z: out[3], T: out[0]}
}

// Equal reports whether every entry of m and o differs by at most tol.
func (m Matrix) Equal(o Matrix, tol float64) bool {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if math.Abs(m[r][c]-o[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	sb := &strings.Builder{}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(format.FloatToFixedWidthString(m[r][c], 14))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
