package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NormalizeEpsilon is the length at or below which Normalize leaves a vector untouched.
const NormalizeEpsilon float32 = 0.0001

// WorldUp is the fixed world-space up axis (+Y).
var WorldUp = mgl32.Vec3{0, 1, 0}

// Mat4 is a 4x4 matrix stored as 16 floats.
// Element (row, col) lives at index row*4+col. Every matrix in this engine uses this layout,
// and Mul4 is the only place the index arithmetic of a product is spelled out.
type Mat4 [16]float32

// NewIdentity returns a 4x4 identity matrix.
//
// Returns:
//   - Mat4: the identity matrix
func NewIdentity() Mat4 {
	var m Mat4
	Identity(m[:])
	return m
}

// At returns the element at the given row and column.
//
// Parameters:
//   - row: row index in [0, 3]
//   - col: column index in [0, 3]
//
// Returns:
//   - float32: the element at index row*4+col
func (m Mat4) At(row, col int) float32 {
	return m[row*4+col]
}

// Set writes the element at the given row and column.
//
// Parameters:
//   - row: row index in [0, 3]
//   - col: column index in [0, 3]
//   - v: the value to store
func (m *Mat4) Set(row, col int, v float32) {
	m[row*4+col] = v
}

// Mul returns the product m * b.
//
// Parameters:
//   - b: right-hand matrix
//
// Returns:
//   - Mat4: the product
func (m Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	Mul4(out[:], m[:], b[:])
	return out
}

// TransformRow transforms the row vector v by the matrix (v * m).
// For a view matrix this maps a homogeneous world-space point into view space.
//
// Parameters:
//   - v: homogeneous row vector
//
// Returns:
//   - [4]float32: the transformed vector
func (m Mat4) TransformRow(v [4]float32) [4]float32 {
	var out [4]float32
	for col := 0; col < 4; col++ {
		var sum float32
		for row := 0; row < 4; row++ {
			sum += v[row] * m[row*4+col]
		}
		out[col] = sum
	}
	return out
}

// HasNaNOrInf reports whether any element of the matrix is NaN or infinite.
//
// Returns:
//   - bool: true if at least one element is not a finite number
func (m Mat4) HasNaNOrInf() bool {
	for _, v := range m {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
	}
	return false
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// Result: out[r*4+c] = sum over k of a[r*4+k] * b[k*4+c], i.e. out = a * b with
// element (row, col) at index row*4+col. out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // row of A
		for j := 0; j < 4; j++ { // column of B
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[i*4+k] * b[k*4+j]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Normalize scales v to unit length.
// Vectors whose length is at or below NormalizeEpsilon are returned unchanged, so a zero
// vector stays zero instead of turning into NaNs.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the normalized vector, or v itself when it is too short
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l > NormalizeEpsilon {
		return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
	}
	return v
}

// Basis derives the right and up vectors for a forward direction and an up hint:
// right = normalize(up x forward), up = normalize(forward x right).
// The returned up is re-orthogonalized; the hint only seeds the cross product.
//
// Parameters:
//   - forward: normalized forward direction
//   - upHint: approximate up direction
//
// Returns:
//   - right: the normalized right vector
//   - up: the normalized, re-orthogonalized up vector
func Basis(forward, upHint mgl32.Vec3) (right, up mgl32.Vec3) {
	right = Normalize(upHint.Cross(forward))
	up = Normalize(forward.Cross(right))
	return right, up
}
