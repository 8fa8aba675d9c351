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
	"github.com/pkg/errors"

	"github.com/Lakuna/umath-sub001/core/fault"
)

// InvertAll returns the inverse of every matrix in ms, such as the bind pose
// of a skeleton. Singular matrices are left as the zero matrix in the result,
// and the first failure is returned, wrapped with its index.
func InvertAll(ms []Mat4) ([]Mat4, error) {
	out := make([]Mat4, len(ms))
	errs := fault.List{}
	for i, m := range ms {
		inv, err := m.Invert()
		if err != nil {
			errs.Collect(errors.Wrapf(err, "matrix %d", i))
			continue
		}
		out[i] = inv
	}
	if errs.Count() > 0 {
		return out, errors.Wrapf(errs.First(), "%d of %d matrices could not be inverted", errs.Count(), len(ms))
	}
	return out, nil
}

// DualQuatsFromMat4s returns the normalized dual quaternion of each rigid
// transform in ms, as used for dual quaternion skinning.
func DualQuatsFromMat4s(ms []Mat4) []DualQuat {
	out := make([]DualQuat, len(ms))
	for i, m := range ms {
		out[i] = DualQuatFromMat4(m).Normalize()
	}
	return out
}
