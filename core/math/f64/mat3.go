// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package f64

import "github.com/pkg/errors"

// Mat3 is a 3x3 matrix of float64 stored in column-major order.
type Mat3 [9]float64

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromQuat returns the rotation matrix of the unit quaternion q.
func Mat3FromQuat(q Quat) Mat3 {
	return rotationBlock(q)
}

// Mat3FromMat4 returns the upper-left 3x3 block of m.
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float64 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]
	return a00*(a22*a11-a12*a21) + a01*(-a22*a10+a12*a20) + a02*(a21*a10-a11*a20)
}

// Invert returns the inverse of m. It returns ErrSingularMatrix if the
// determinant of m is exactly zero.
func (m Mat3) Invert() (Mat3, error) {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[3], m[4], m[5]
	a20, a21, a22 := m[6], m[7], m[8]
	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20
	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		return Mat3{}, errors.Wrap(ErrSingularMatrix, "Mat3.Invert")
	}
	inv := 1 / det
	return Mat3{
		b01 * inv,
		(-a22*a01 + a02*a21) * inv,
		(a12*a01 - a02*a11) * inv,
		b11 * inv,
		(a22*a00 - a02*a20) * inv,
		(-a12*a00 + a02*a10) * inv,
		b21 * inv,
		(-a21*a00 + a01*a20) * inv,
		(a11*a00 - a01*a10) * inv,
	}, nil
}

// Equals returns true if every element of m is Equal to the matching element
// of o.
func (m Mat3) Equals(o Mat3) bool {
	return EqualAll(m[:], o[:])
}

// Mul3 returns the matrix product a · b.
func Mul3(a, b Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = a[r]*b[c*3] + a[3+r]*b[c*3+1] + a[6+r]*b[c*3+2]
		}
	}
	return out
}
