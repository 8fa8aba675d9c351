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

import "math"

// Vec3 is a three element vector of float64.
// The elements are in the order X, Y, Z.
type Vec3 [3]float64

// SqrMagnitude returns the squared magnitude of the vector.
func (v Vec3) SqrMagnitude() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Magnitude returns the magnitude of the vector.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Scale returns the element-wise scaling of v with s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Negate returns the vector pointing the opposite way to v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Normalize returns the normalized vector of v.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.SqrMagnitude()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / math.Sqrt(l))
}

// W returns a Vec4 with the first three elements set to v and the fourth set
// to w.
func (v Vec3) W(w float64) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

// Equals returns true if every element of v is Equal to the matching element
// of o.
func (v Vec3) Equals(o Vec3) bool {
	return EqualAll(v[:], o[:])
}

// TransformMat4 returns the point v transformed by m, with an implicit fourth
// component of 1 and the result divided by the resulting w.
func (v Vec3) TransformMat4(m Mat4) Vec3 {
	x, y, z := v[0], v[1], v[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// TransformQuat returns v rotated by the unit quaternion q.
func (v Vec3) TransformQuat(q Quat) Vec3 {
	// v' = v + 2w(q×v) + 2q×(q×v)
	u := Vec3{q[0], q[1], q[2]}
	uv := Cross3D(u, v)
	uuv := Cross3D(u, uv)
	return Add3D(v, Add3D(uv.Scale(2*q[3]), uuv.Scale(2)))
}

// Add3D returns the element-wise addition of vector a and b.
func Add3D(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub3D returns the element-wise subtraction of vector b from a.
func Sub3D(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Cross3D returns the cross product of vector a and b.
func Cross3D(a, b Vec3) Vec3 {
	return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

// Dot3D returns the dot product of vector a and b.
func Dot3D(a, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Lerp3D returns the linear interpolation between a and b by t.
func Lerp3D(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
	}
}
