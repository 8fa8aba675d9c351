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

// Vec4 is a four element vector of float64.
// The elements are in the order X, Y, Z, W.
type Vec4 [4]float64

// SqrMagnitude returns the squared magnitude of the vector.
func (v Vec4) SqrMagnitude() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// Magnitude returns the magnitude of the vector.
func (v Vec4) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Scale returns the element-wise scaling of v with s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Normalize returns the normalized vector of v.
// The zero vector normalizes to itself.
func (v Vec4) Normalize() Vec4 {
	l := v.SqrMagnitude()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / math.Sqrt(l))
}

// XYZ returns the first three elements of v.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Equals returns true if every element of v is Equal to the matching element
// of o.
func (v Vec4) Equals(o Vec4) bool {
	return EqualAll(v[:], o[:])
}

// Add4D returns the element-wise addition of vector a and b.
func Add4D(a, b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub4D returns the element-wise subtraction of vector b from a.
func Sub4D(a, b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Dot4D returns the dot product of vector a and b.
func Dot4D(a, b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Lerp4D returns the linear interpolation between a and b by t.
func Lerp4D(a, b Vec4, t float64) Vec4 {
	return Vec4{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
		a[3] + t*(b[3]-a[3]),
	}
}
