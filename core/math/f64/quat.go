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
	"math/rand"
)

// Quat is a quaternion of float64.
// The elements are in the order X, Y, Z, W where W is the scalar part.
//
// A Quat represents a rotation only when it has unit magnitude. Functions
// documented as taking a unit quaternion do not check this: passing a
// non-unit quaternion returns a plausible but incorrect rotation.
type Quat [4]float64

// QuatIdentity returns the quaternion representing no rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the rotation of radians around the unit vector
// axis.
func QuatFromAxisAngle(axis Vec3, radians float64) Quat {
	s, c := math.Sincos(radians * 0.5)
	return Quat{s * axis[0], s * axis[1], s * axis[2], c}
}

// QuatRotationTo returns the shortest rotation that takes the unit vector a
// onto the unit vector b.
func QuatRotationTo(a, b Vec3) Quat {
	dot := Dot3D(a, b)
	switch {
	case dot < -1+Epsilon:
		axis := Cross3D(Vec3{1, 0, 0}, a)
		if axis.Magnitude() < Epsilon {
			axis = Cross3D(Vec3{0, 1, 0}, a)
		}
		return QuatFromAxisAngle(axis.Normalize(), math.Pi)
	case dot > 1-Epsilon:
		return QuatIdentity()
	default:
		c := Cross3D(a, b)
		return Quat{c[0], c[1], c[2], 1 + dot}.Normalize()
	}
}

// QuatFromAxes returns the rotation described by the orthonormal frame of the
// view, right and up directions.
func QuatFromAxes(view, right, up Vec3) Quat {
	m := Mat3{
		right[0], up[0], -view[0],
		right[1], up[1], -view[1],
		right[2], up[2], -view[2],
	}
	return QuatFromMat3(m).Normalize()
}

// RandomQuat returns a uniformly distributed random unit quaternion using the
// random source rng.
func RandomQuat(rng *rand.Rand) Quat {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	s2, c2 := math.Sincos(2 * math.Pi * u2)
	s3, c3 := math.Sincos(2 * math.Pi * u3)
	return Quat{a * s2, a * c2, b * s3, b * c3}
}

// V returns the vector (X, Y, Z) part of the quaternion.
func (q Quat) V() Vec3 {
	return Vec3{q[0], q[1], q[2]}
}

// CalculateW returns q with W recomputed from X, Y and Z so that the result has
// unit magnitude.
func (q Quat) CalculateW() Quat {
	x, y, z := q[0], q[1], q[2]
	return Quat{x, y, z, math.Sqrt(math.Abs(1 - x*x - y*y - z*z))}
}

// AxisAngle returns the rotation axis and angle in radians of the unit
// quaternion q. If the angle is too small for the axis to be recovered the
// X axis is returned.
func (q Quat) AxisAngle() (Vec3, float64) {
	radians := math.Acos(clamp(q[3], -1, 1)) * 2
	s := math.Sin(radians / 2)
	if s > Epsilon {
		return Vec3{q[0] / s, q[1] / s, q[2] / s}, radians
	}
	return Vec3{1, 0, 0}, radians
}

// SqrMagnitude returns the squared magnitude of the quaternion.
func (q Quat) SqrMagnitude() float64 {
	return DotQ(q, q)
}

// Magnitude returns the magnitude of the quaternion.
func (q Quat) Magnitude() float64 {
	return math.Sqrt(q.SqrMagnitude())
}

// Scale returns the element-wise scaling of q with s.
func (q Quat) Scale(s float64) Quat {
	return Quat{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}

// Negate returns q with every element negated. The result represents the same
// rotation as q.
func (q Quat) Negate() Quat {
	return Quat{-q[0], -q[1], -q[2], -q[3]}
}

// Normalize returns q scaled to unit magnitude.
// The zero quaternion normalizes to itself.
func (q Quat) Normalize() Quat {
	l := q.SqrMagnitude()
	if l == 0 {
		return q
	}
	return q.Scale(1 / math.Sqrt(l))
}

// Conjugate returns q with the vector part negated.
// For a unit quaternion this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Invert returns the inverse of q. The zero quaternion has no inverse and
// returns the zero quaternion.
func (q Quat) Invert() Quat {
	dot := q.SqrMagnitude()
	if dot == 0 {
		return Quat{}
	}
	inv := 1 / dot
	return Quat{-q[0] * inv, -q[1] * inv, -q[2] * inv, q[3] * inv}
}

// RotateX returns q rotated by radians around the X axis.
func (q Quat) RotateX(radians float64) Quat {
	s, c := math.Sincos(radians * 0.5)
	return MulQ(q, Quat{s, 0, 0, c})
}

// RotateY returns q rotated by radians around the Y axis.
func (q Quat) RotateY(radians float64) Quat {
	s, c := math.Sincos(radians * 0.5)
	return MulQ(q, Quat{0, s, 0, c})
}

// RotateZ returns q rotated by radians around the Z axis.
func (q Quat) RotateZ(radians float64) Quat {
	s, c := math.Sincos(radians * 0.5)
	return MulQ(q, Quat{0, 0, s, c})
}

// Exp returns the exponential of q.
func (q Quat) Exp() Quat {
	x, y, z, w := q[0], q[1], q[2], q[3]
	r := math.Sqrt(x*x + y*y + z*z)
	et := math.Exp(w)
	s := 0.0
	if r > 0 {
		s = et * math.Sin(r) / r
	}
	return Quat{x * s, y * s, z * s, et * math.Cos(r)}
}

// Ln returns the natural logarithm of q.
func (q Quat) Ln() Quat {
	x, y, z, w := q[0], q[1], q[2], q[3]
	r := math.Sqrt(x*x + y*y + z*z)
	t := 0.0
	if r > 0 {
		t = math.Atan2(r, w) / r
	}
	return Quat{x * t, y * t, z * t, 0.5 * math.Log(x*x+y*y+z*z+w*w)}
}

// Pow returns q raised to the power s.
func (q Quat) Pow(s float64) Quat {
	return q.Ln().Scale(s).Exp()
}

// Equals returns true if every element of q is Equal to the matching element
// of o. q and its negation represent the same rotation but are not Equal.
func (q Quat) Equals(o Quat) bool {
	return EqualAll(q[:], o[:])
}

// SameRotation returns true if q and o are Equal or if q and the negation of
// o are Equal.
func (q Quat) SameRotation(o Quat) bool {
	return q.Equals(o) || q.Equals(o.Negate())
}

// DotQ returns the dot product of quaternions a and b.
func DotQ(a, b Quat) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// AddQ returns the element-wise addition of quaternions a and b.
func AddQ(a, b Quat) Quat {
	return Quat{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// MulQ returns the Hamilton product a ⊗ b.
// The rotation matrix of the result is the matrix product of the rotation
// matrices of a and b, so b is applied to a vector first.
func MulQ(a, b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		ax*bw + aw*bx + ay*bz - az*by,
		ay*bw + aw*by + az*bx - ax*bz,
		az*bw + aw*bz + ax*by - ay*bx,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// AngleQ returns the angle in radians between the unit quaternions a and b.
func AngleQ(a, b Quat) float64 {
	d := DotQ(a, b)
	// Rounding can push the cosine just outside [-1, 1].
	return math.Acos(clamp(2*d*d-1, -1, 1))
}

// LerpQ returns the element-wise linear interpolation between a and b by t.
// The result is not normalized.
func LerpQ(a, b Quat, t float64) Quat {
	return Quat{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
		a[3] + t*(b[3]-a[3]),
	}
}

// Slerp returns the spherical linear interpolation between the unit
// quaternions a and b by t, along the shorter of the two arcs.
func Slerp(a, b Quat, t float64) Quat {
	cosom := DotQ(a, b)
	if cosom < 0 {
		cosom = -cosom
		b = b.Negate()
	}
	scale0, scale1 := 1-t, t
	if 1-cosom > Epsilon {
		omega := math.Acos(cosom)
		sinom := math.Sin(omega)
		scale0 = math.Sin((1-t)*omega) / sinom
		scale1 = math.Sin(t*omega) / sinom
	}
	return Quat{
		scale0*a[0] + scale1*b[0],
		scale0*a[1] + scale1*b[1],
		scale0*a[2] + scale1*b[2],
		scale0*a[3] + scale1*b[3],
	}
}

// Sqlerp returns the spherical quadrangle interpolation between a and d by t,
// using b and c as control points.
func Sqlerp(a, b, c, d Quat, t float64) Quat {
	ad := Slerp(a, d, t)
	bc := Slerp(b, c, t)
	return Slerp(ad, bc, 2*t*(1-t))
}
