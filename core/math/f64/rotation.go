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

// QuatFromMat3 returns the rotation held by the pure rotation matrix m.
func QuatFromMat3(m Mat3) Quat {
	return quatFromRotationBlock(m)
}

// quatFromRotationBlock extracts a quaternion from an orthonormal 3x3
// column-major rotation block. Mat4.Rotation shares it after dividing out the
// column scales.
//
// When the trace is positive W is the largest component and is recovered
// first. Otherwise the largest diagonal element i picks the dominant vector
// component, and j and k follow it cyclically, keeping the square root away
// from zero.
func quatFromRotationBlock(m Mat3) Quat {
	var out Quat
	trace := m[0] + m[4] + m[8]
	if trace > 0 {
		root := math.Sqrt(trace + 1)
		out[3] = 0.5 * root
		root = 0.5 / root
		out[0] = (m[5] - m[7]) * root
		out[1] = (m[6] - m[2]) * root
		out[2] = (m[1] - m[3]) * root
		return out
	}
	i := 0
	if m[4] > m[0] {
		i = 1
	}
	if m[8] > m[i*3+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3
	root := math.Sqrt(m[i*3+i] - m[j*3+j] - m[k*3+k] + 1)
	out[i] = 0.5 * root
	root = 0.5 / root
	out[3] = (m[j*3+k] - m[k*3+j]) * root
	out[j] = (m[j*3+i] + m[i*3+j]) * root
	out[k] = (m[k*3+i] + m[i*3+k]) * root
	return out
}

// rotationBlock returns the column-major 3x3 rotation matrix of the unit
// quaternion q.
func rotationBlock(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, yx, yy := x*x2, y*x2, y*y2
	zx, zy, zz := z*x2, z*y2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	return Mat3{
		1 - yy - zz, yx + wz, zx - wy,
		yx - wz, 1 - xx - zz, zy + wx,
		zx + wy, zy - wx, 1 - xx - yy,
	}
}

// axisAngleQuat returns the rotation of radians around axis, normalizing
// axis first. ok is false if axis is too short to define a direction.
func axisAngleQuat(axis Vec3, radians float64) (q Quat, ok bool) {
	l := axis.Magnitude()
	if l < Epsilon {
		return Quat{}, false
	}
	return QuatFromAxisAngle(axis.Scale(1/l), radians), true
}
