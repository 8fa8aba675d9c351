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


package assert

import "math"

// OnFloats is the result of calling ThatFloats on an Assertion.
// It provides tolerance based assertion tests over a tuple of floats, such as
// the elements of a vector, quaternion or matrix.
type OnFloats struct {
	Assertion
	value []float64
}

// ThatFloats returns an OnFloats for assertions on a tuple of floats.
func (a Assertion) ThatFloats(value ...float64) OnFloats {
	return OnFloats{Assertion: a, value: value}
}

// within returns true if a and b differ by no more than tolerance scaled by
// the larger of 1, |a| and |b|.
func within(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// EqualsWithin asserts that the tuple has the same length as expect and that
// every element matches within the relative tolerance.
func (o OnFloats) EqualsWithin(tolerance float64, expect ...float64) bool {
	ok := len(o.value) == len(expect)
	for i := 0; ok && i < len(expect); i++ {
		ok = within(o.value[i], expect[i], tolerance)
	}
	return o.Compare(o.value, "≈", expect).Test(ok)
}

// IsFinite asserts that no element of the tuple is NaN or infinite.
func (o OnFloats) IsFinite() bool {
	ok := true
	for _, v := range o.value {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			ok = false
		}
	}
	return o.Compare(o.value, "is", "finite").Test(ok)
}
