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

import (
	"math"

	"github.com/pkg/errors"
)

// Mat4 is a 4x4 matrix of float64 stored in column-major order.
//
// A Mat4 built from a translation, rotation and scale holds [R·S | T] in its
// upper three rows and 0, 0, 0, 1 in the last. The decomposition methods
// Scaling and Rotation assume the upper-left 3x3 block has orthogonal columns;
// a sheared matrix yields a meaningless rotation.
type Mat4 [16]float64

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromTranslation returns the matrix translating by v.
func Mat4FromTranslation(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v[0], v[1], v[2], 1,
	}
}

// Mat4FromScaling returns the matrix scaling by v.
func Mat4FromScaling(v Vec3) Mat4 {
	return Mat4{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromRotation returns the matrix rotating by radians around axis.
// It returns ErrMagnitude if axis has (near) zero length.
func Mat4FromRotation(radians float64, axis Vec3) (Mat4, error) {
	q, ok := axisAngleQuat(axis, radians)
	if !ok {
		return Mat4{}, errors.Wrapf(ErrMagnitude, "Mat4FromRotation axis %v", axis)
	}
	return Mat4FromQuat(q), nil
}

// Mat4FromXRotation returns the matrix rotating by radians around the X axis.
func Mat4FromXRotation(radians float64) Mat4 {
	s, c := math.Sincos(radians)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromYRotation returns the matrix rotating by radians around the Y axis.
func Mat4FromYRotation(radians float64) Mat4 {
	s, c := math.Sincos(radians)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromZRotation returns the matrix rotating by radians around the Z axis.
func Mat4FromZRotation(radians float64) Mat4 {
	s, c := math.Sincos(radians)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromQuat returns the rotation matrix of the unit quaternion q.
func Mat4FromQuat(q Quat) Mat4 {
	return Mat4FromRotationTranslation(q, Vec3{})
}

// Mat4FromRotationTranslation returns the matrix that rotates by the unit
// quaternion q and then translates by t.
func Mat4FromRotationTranslation(q Quat, t Vec3) Mat4 {
	return Mat4FromRotationTranslationScale(q, t, Vec3{1, 1, 1})
}

// Mat4FromRotationTranslationScale returns the matrix that scales by s,
// rotates by the unit quaternion q and then translates by t.
func Mat4FromRotationTranslationScale(q Quat, t, s Vec3) Mat4 {
	r := rotationBlock(q)
	return Mat4{
		r[0] * s[0], r[1] * s[0], r[2] * s[0], 0,
		r[3] * s[1], r[4] * s[1], r[5] * s[1], 0,
		r[6] * s[2], r[7] * s[2], r[8] * s[2], 0,
		t[0], t[1], t[2], 1,
	}
}

// Mat4FromRotationTranslationScaleOrigin is like
// Mat4FromRotationTranslationScale, except that the scale and rotation pivot
// around origin instead of the coordinate origin.
func Mat4FromRotationTranslationScaleOrigin(q Quat, t, s, origin Vec3) Mat4 {
	out := Mat4FromRotationTranslationScale(q, t, s)
	ox, oy, oz := origin[0], origin[1], origin[2]
	out[12] += ox - (out[0]*ox + out[4]*oy + out[8]*oz)
	out[13] += oy - (out[1]*ox + out[5]*oy + out[9]*oz)
	out[14] += oz - (out[2]*ox + out[6]*oy + out[10]*oz)
	return out
}

// Mat4FromDualQuat returns the matrix of the rigid transform dq.
// The translation is divided by the squared magnitude of the real part when
// it is non-zero, so a uniformly scaled dual quaternion still yields the
// right translation. The rotation block is built from the real part as is.
func Mat4FromDualQuat(dq DualQuat) Mat4 {
	t := MulQ(dq.Dual, dq.Real.Conjugate()).V().Scale(2)
	if m := dq.Real.SqrMagnitude(); m > 0 {
		t = t.Scale(1 / m)
	}
	return Mat4FromRotationTranslation(dq.Real, t)
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// cofactors holds the 2x2 sub-determinants shared by Determinant, Adjoint and
// Invert.
type cofactors [12]float64

func (m Mat4) cofactors() cofactors {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]
	return cofactors{
		a00*a11 - a01*a10,
		a00*a12 - a02*a10,
		a00*a13 - a03*a10,
		a01*a12 - a02*a11,
		a01*a13 - a03*a11,
		a02*a13 - a03*a12,
		a20*a31 - a21*a30,
		a20*a32 - a22*a30,
		a20*a33 - a23*a30,
		a21*a32 - a22*a31,
		a21*a33 - a23*a31,
		a22*a33 - a23*a32,
	}
}

func (b cofactors) determinant() float64 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

func (m Mat4) adjugate(b cofactors) Mat4 {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]
	return Mat4{
		a11*b[11] - a12*b[10] + a13*b[9],
		a02*b[10] - a01*b[11] - a03*b[9],
		a31*b[5] - a32*b[4] + a33*b[3],
		a22*b[4] - a21*b[5] - a23*b[3],
		a12*b[8] - a10*b[11] - a13*b[7],
		a00*b[11] - a02*b[8] + a03*b[7],
		a32*b[2] - a30*b[5] - a33*b[1],
		a20*b[5] - a22*b[2] + a23*b[1],
		a10*b[10] - a11*b[8] + a13*b[6],
		a01*b[8] - a00*b[10] - a03*b[6],
		a30*b[4] - a31*b[2] + a33*b[0],
		a21*b[2] - a20*b[4] - a23*b[0],
		a11*b[7] - a10*b[9] - a12*b[6],
		a00*b[9] - a01*b[7] + a02*b[6],
		a31*b[1] - a30*b[3] - a32*b[0],
		a20*b[3] - a21*b[1] + a22*b[0],
	}
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float64 {
	return m.cofactors().determinant()
}

// Adjoint returns the adjugate of m, the transpose of its cofactor matrix.
func (m Mat4) Adjoint() Mat4 {
	return m.adjugate(m.cofactors())
}

// Invert returns the inverse of m. It returns ErrSingularMatrix if the
// determinant of m is exactly zero.
func (m Mat4) Invert() (Mat4, error) {
	b := m.cofactors()
	det := b.determinant()
	if det == 0 {
		return Mat4{}, errors.Wrap(ErrSingularMatrix, "Mat4.Invert")
	}
	return m.adjugate(b).scale(1 / det), nil
}

func (m Mat4) scale(s float64) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Translate returns m · T(v), the matrix that translates by v before applying
// m.
func (m Mat4) Translate(v Vec3) Mat4 {
	x, y, z := v[0], v[1], v[2]
	m[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	m[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	m[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	m[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return m
}

// Scale returns m · S(v), the matrix that scales by v before applying m.
func (m Mat4) Scale(v Vec3) Mat4 {
	for i := 0; i < 3; i++ {
		for r := 0; r < 4; r++ {
			m[i*4+r] *= v[i]
		}
	}
	return m
}

// Rotate returns m · R, where R rotates by radians around axis.
// It returns ErrMagnitude if axis has (near) zero length.
func (m Mat4) Rotate(radians float64, axis Vec3) (Mat4, error) {
	r, err := Mat4FromRotation(radians, axis)
	if err != nil {
		return Mat4{}, errors.Wrap(err, "Mat4.Rotate")
	}
	return Mul4(m, r), nil
}

// RotateX returns m rotated by radians around the X axis.
func (m Mat4) RotateX(radians float64) Mat4 {
	return Mul4(m, Mat4FromXRotation(radians))
}

// RotateY returns m rotated by radians around the Y axis.
func (m Mat4) RotateY(radians float64) Mat4 {
	return Mul4(m, Mat4FromYRotation(radians))
}

// RotateZ returns m rotated by radians around the Z axis.
func (m Mat4) RotateZ(radians float64) Mat4 {
	return Mul4(m, Mat4FromZRotation(radians))
}

// Translation returns the translation held in the last column of m.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Scaling returns the scale on each axis, measured as the length of the
// matching column of the upper-left 3x3 block. The values are only correct
// when the block has no shear. Negative scales come back positive.
func (m Mat4) Scaling() Vec3 {
	return Vec3{
		math.Hypot(math.Hypot(m[0], m[1]), m[2]),
		math.Hypot(math.Hypot(m[4], m[5]), m[6]),
		math.Hypot(math.Hypot(m[8], m[9]), m[10]),
	}
}

// Rotation returns the rotation held in m, after dividing each column of the
// upper-left 3x3 block by its scale. A zero column is left as zero.
func (m Mat4) Rotation() Quat {
	return quatFromRotationBlock(m.unscaled(m.Scaling()))
}

func (m Mat4) unscaled(s Vec3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		inv := 0.0
		if s[c] != 0 {
			inv = 1 / s[c]
		}
		out[c*3+0] = m[c*4+0] * inv
		out[c*3+1] = m[c*4+1] * inv
		out[c*3+2] = m[c*4+2] * inv
	}
	return out
}

// Decompose splits m into its translation, rotation and scale.
func (m Mat4) Decompose() (t Vec3, r Quat, s Vec3) {
	s = m.Scaling()
	return m.Translation(), quatFromRotationBlock(m.unscaled(s)), s
}

// Equals returns true if every element of m is Equal to the matching element
// of o.
func (m Mat4) Equals(o Mat4) bool {
	return EqualAll(m[:], o[:])
}

// Mul4 returns the matrix product a · b.
func Mul4(a, b Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		b0, b1, b2, b3 := b[c*4], b[c*4+1], b[c*4+2], b[c*4+3]
		for r := 0; r < 4; r++ {
			out[c*4+r] = a[r]*b0 + a[4+r]*b1 + a[8+r]*b2 + a[12+r]*b3
		}
	}
	return out
}
