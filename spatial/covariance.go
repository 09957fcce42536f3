// File: covariance.go
// Role: fixed 6x6 covariance matrix with the handful of linear-algebra
// operations first-order transform-covariance propagation needs.
// Flat row-major storage with bounds-checked At/Set, specialized to 6x6
// so there is no
// dimension-mismatch error path that can never actually trigger here.

package spatial

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds indicates a row or column index outside [0,6).
var ErrIndexOutOfBounds = errors.New("spatial: covariance index out of bounds")

// Covariance6 is a 6x6 row-major matrix of float64 values, used to carry
// the uncertainty of a Transform's translation (rows/cols 0-2) and
// orientation (rows/cols 3-5).
type Covariance6 struct {
	data [36]float64
}

// ZeroCovariance6 returns a Covariance6 with every entry zero.
func ZeroCovariance6() Covariance6 {
	return Covariance6{}
}

// At returns the entry at (row, col).
func (c Covariance6) At(row, col int) (float64, error) {
	idx, err := covIndex(row, col)
	if err != nil {
		return 0, err
	}
	return c.data[idx], nil
}

// Set assigns v at (row, col) and returns the updated matrix (Covariance6
// is a value type; Set does not mutate the receiver in place for callers
// holding a copy elsewhere).
func (c Covariance6) Set(row, col int, v float64) (Covariance6, error) {
	idx, err := covIndex(row, col)
	if err != nil {
		return c, err
	}
	c.data[idx] = v
	return c, nil
}

func covIndex(row, col int) (int, error) {
	if row < 0 || row >= 6 || col < 0 || col >= 6 {
		return 0, fmt.Errorf("spatial: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*6 + col, nil
}

// Add returns c+o element-wise.
func (c Covariance6) Add(o Covariance6) Covariance6 {
	var out Covariance6
	for i := range out.data {
		out.data[i] = c.data[i] + o.data[i]
	}
	return out
}

// Scale returns c scaled by alpha.
func (c Covariance6) Scale(alpha float64) Covariance6 {
	var out Covariance6
	for i := range out.data {
		out.data[i] = c.data[i] * alpha
	}
	return out
}

// Transpose returns c's transpose.
func (c Covariance6) Transpose() Covariance6 {
	var out Covariance6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			out.data[j*6+i] = c.data[i*6+j]
		}
	}
	return out
}

// Mul returns the matrix product c*o.
func (c Covariance6) Mul(o Covariance6) Covariance6 {
	var out Covariance6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += c.data[i*6+k] * o.data[k*6+j]
			}
			out.data[i*6+j] = sum
		}
	}
	return out
}

// ApproxEqual reports whether every entry of c and o is within tol.
func (c Covariance6) ApproxEqual(o Covariance6, tol float64) bool {
	for i := range c.data {
		d := c.data[i] - o.data[i]
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// blockDiagonalRotation builds the 6x6 block-diagonal matrix
// [[R,0],[0,R]] from a 3x3 rotation matrix, the Jacobian used to rotate a
// translation+orientation covariance block when composing or inverting a
// Transform.
func blockDiagonalRotation(r [9]float64) Covariance6 {
	var out Covariance6
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.data[i*6+j] = r[i*3+j]
			out.data[(i+3)*6+(j+3)] = r[i*3+j]
		}
	}
	return out
}
