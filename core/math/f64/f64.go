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


// Package f64 implements rotation and rigid-transform algebra over float64:
// vectors, quaternions, dual quaternions and 3x3 / 4x4 matrices, together
// with the conversions between them.
//
// Every type is a fixed-size value. Every operation returns its result by
// value and keeps no state between calls, so all functions are safe for
// concurrent use and an input may be overwritten by the result
// (q = q.RotateX(r)).
//
// Exact equivalence is the == operator. Approximate equivalence, the Equals
// methods, compares each element with Equal.
package f64

import "math"

// Epsilon is the relative tolerance used by every approximate comparison and
// by the numerical-stability branches of the rotation algorithms.
const Epsilon = 0.000001

// MinOf returns the minimum value of all the arguments.
func MinOf(a float64, b ...float64) float64 {
	v := a
	for _, x := range b {
		if x < v {
			v = x
		}
	}
	return v
}

// MaxOf returns the maximum value of all the arguments.
func MaxOf(a float64, b ...float64) float64 {
	v := a
	for _, x := range b {
		if x > v {
			v = x
		}
	}
	return v
}

// Equal returns true if a and b are equal within Epsilon, scaled by the
// larger of 1, |a| and |b|.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*MaxOf(1, math.Abs(a), math.Abs(b))
}

// EqualAll returns true if a and b have the same length and every pair of
// elements is Equal.
func EqualAll(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// clamp returns v limited to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return MaxOf(lo, MinOf(hi, v))
}
