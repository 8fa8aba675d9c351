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


package f64_test

import (
	"math/rand"

	fuzz "github.com/google/gofuzz"

	"github.com/Lakuna/umath-sub001/core/math/f64"
)

// transform is a random translation, rotation and scale.
type transform struct {
	T f64.Vec3
	R f64.Quat
	S f64.Vec3
}

// newFuzzer returns a deterministic fuzzer producing unit quaternions and
// vectors with elements in [-10, 10).
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().
		RandSource(rand.NewSource(seed)).
		NilChance(0).
		Funcs(
			func(q *f64.Quat, c fuzz.Continue) {
				*q = f64.RandomQuat(c.Rand)
			},
			func(v *f64.Vec3, c fuzz.Continue) {
				*v = f64.Vec3{c.Float64()*20 - 10, c.Float64()*20 - 10, c.Float64()*20 - 10}
			},
			func(tr *transform, c fuzz.Continue) {
				c.Fuzz(&tr.T)
				c.Fuzz(&tr.R)
				c.Fuzz(&tr.S)
				// Keep the scale positive and away from zero.
				for i, s := range tr.S {
					tr.S[i] = 0.1 + s*s/10
				}
			},
		)
}

// fuzzCount is the number of random inputs each property test checks.
const fuzzCount = 200

// aligned returns got, or its negation if that is closer to want. A quaternion
// and its negation represent the same rotation.
func aligned(got, want f64.Quat) f64.Quat {
	if f64.DotQ(got, want) < 0 {
		return got.Negate()
	}
	return got
}

// dqElements returns the eight elements of dq, real part first.
func dqElements(dq f64.DualQuat) []float64 {
	return append(dq.Real[:len(dq.Real):len(dq.Real)], dq.Dual[:]...)
}
