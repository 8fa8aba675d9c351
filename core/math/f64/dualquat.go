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

// DualQuat is a dual quaternion representing a rigid transform: a rotation
// followed by a translation.
//
// A DualQuat is a valid rigid transform when Real has unit magnitude and Real
// is orthogonal to Dual. Translate, the Rotate methods and MulDQ keep a valid
// input valid. Values built up from many multiplications drift, and must be
// passed through Normalize before Translation or Mat4FromDualQuat are used.
type DualQuat struct {
	// Real is the rotation part.
	Real Quat
	// Dual encodes the translation, coupled to the rotation.
	Dual Quat
}

// DualQuatIdentity returns the dual quaternion of the identity transform.
func DualQuatIdentity() DualQuat {
	return DualQuat{Real: QuatIdentity()}
}

// DualQuatFromRotationTranslation returns the transform that rotates by the
// unit quaternion q and then translates by t.
func DualQuatFromRotationTranslation(q Quat, t Vec3) DualQuat {
	// Dual = ½ (t, 0) ⊗ q
	ax, ay, az := t[0]*0.5, t[1]*0.5, t[2]*0.5
	bx, by, bz, bw := q[0], q[1], q[2], q[3]
	return DualQuat{
		Real: q,
		Dual: Quat{
			ax*bw + ay*bz - az*by,
			ay*bw + az*bx - ax*bz,
			az*bw + ax*by - ay*bx,
			-ax*bx - ay*by - az*bz,
		},
	}
}

// DualQuatFromTranslation returns the transform that translates by t.
func DualQuatFromTranslation(t Vec3) DualQuat {
	return DualQuat{
		Real: QuatIdentity(),
		Dual: Quat{t[0] * 0.5, t[1] * 0.5, t[2] * 0.5, 0},
	}
}

// DualQuatFromRotation returns the transform that rotates by the unit
// quaternion q.
func DualQuatFromRotation(q Quat) DualQuat {
	return DualQuat{Real: q}
}

// DualQuatFromMat4 returns the rigid transform held in m.
// Any scale in m is discarded.
func DualQuatFromMat4(m Mat4) DualQuat {
	return DualQuatFromRotationTranslation(m.Rotation(), m.Translation())
}

// Translation returns the translation of dq.
// The result is only correct for a normalized dual quaternion.
func (dq DualQuat) Translation() Vec3 {
	return MulQ(dq.Dual, dq.Real.Conjugate()).V().Scale(2)
}

// TransformPoint returns the point p rotated and then translated by dq.
func (dq DualQuat) TransformPoint(p Vec3) Vec3 {
	return Add3D(p.TransformQuat(dq.Real), dq.Translation())
}

// SqrMagnitude returns the squared magnitude of the real part.
func (dq DualQuat) SqrMagnitude() float64 {
	return dq.Real.SqrMagnitude()
}

// Magnitude returns the magnitude of the real part.
func (dq DualQuat) Magnitude() float64 {
	return dq.Real.Magnitude()
}

// Scale returns every element of dq scaled by s.
func (dq DualQuat) Scale(s float64) DualQuat {
	return DualQuat{Real: dq.Real.Scale(s), Dual: dq.Dual.Scale(s)}
}

// Translate returns dq followed by a translation of v in the local frame of
// dq. Translate and the Rotate methods do not commute.
func (dq DualQuat) Translate(v Vec3) DualQuat {
	half := Quat{v[0] * 0.5, v[1] * 0.5, v[2] * 0.5, 0}
	return DualQuat{
		Real: dq.Real,
		Dual: AddQ(dq.Dual, MulQ(dq.Real, half)),
	}
}

// rotated returns the transform with real part r that keeps the translation
// of dq.
func (dq DualQuat) rotated(r Quat) DualQuat {
	t := MulQ(dq.Dual, dq.Real.Conjugate())
	return DualQuat{Real: r, Dual: MulQ(t, r)}
}

// RotateX returns dq rotated by radians around its local X axis, keeping its
// translation.
func (dq DualQuat) RotateX(radians float64) DualQuat {
	return dq.rotated(dq.Real.RotateX(radians))
}

// RotateY returns dq rotated by radians around its local Y axis, keeping its
// translation.
func (dq DualQuat) RotateY(radians float64) DualQuat {
	return dq.rotated(dq.Real.RotateY(radians))
}

// RotateZ returns dq rotated by radians around its local Z axis, keeping its
// translation.
func (dq DualQuat) RotateZ(radians float64) DualQuat {
	return dq.rotated(dq.Real.RotateZ(radians))
}

// RotateByQuatAppend returns dq ⊗ (q, 0), the rotation q applied in the local
// frame of dq.
func (dq DualQuat) RotateByQuatAppend(q Quat) DualQuat {
	return DualQuat{Real: MulQ(dq.Real, q), Dual: MulQ(dq.Dual, q)}
}

// RotateByQuatPrepend returns (q, 0) ⊗ dq, the rotation q applied in the parent
// frame of dq. The translation of dq is rotated too.
func (dq DualQuat) RotateByQuatPrepend(q Quat) DualQuat {
	return DualQuat{Real: MulQ(q, dq.Real), Dual: MulQ(q, dq.Dual)}
}

// RotateAroundAxis returns dq rotated by radians around axis in the parent
// frame. A rotation by exactly zero radians returns dq unchanged. It returns
// ErrMagnitude if axis has (near) zero length.
func (dq DualQuat) RotateAroundAxis(axis Vec3, radians float64) (DualQuat, error) {
	if radians == 0 {
		return dq, nil
	}
	q, ok := axisAngleQuat(axis, radians)
	if !ok {
		return DualQuat{}, errors.Wrapf(ErrMagnitude, "DualQuat.RotateAroundAxis axis %v", axis)
	}
	return dq.RotateByQuatPrepend(q), nil
}

// Normalize returns dq with a unit real part and a dual part orthogonal to it.
// A dual quaternion with a zero real part is returned unchanged.
func (dq DualQuat) Normalize() DualQuat {
	l := dq.Real.SqrMagnitude()
	if l == 0 {
		return dq
	}
	l = math.Sqrt(l)
	r := dq.Real.Scale(1 / l)
	d := dq.Dual.Scale(1 / l)
	// Remove the part of the dual parallel to the real.
	return DualQuat{Real: r, Dual: AddQ(d, r.Scale(-DotQ(r, d)))}
}

// Invert returns the inverse transform of dq. The zero dual quaternion has no
// inverse and returns the zero dual quaternion.
func (dq DualQuat) Invert() DualQuat {
	l := dq.Real.SqrMagnitude()
	if l == 0 {
		return DualQuat{}
	}
	return dq.Conjugate().Scale(1 / l)
}

// Conjugate returns dq with the vector parts of both quaternions negated.
// For a normalized dual quaternion this equals Invert and is cheaper; for any
// other value it is not the inverse.
func (dq DualQuat) Conjugate() DualQuat {
	return DualQuat{Real: dq.Real.Conjugate(), Dual: dq.Dual.Conjugate()}
}

// Equals returns true if every element of dq is Equal to the matching element
// of o.
func (dq DualQuat) Equals(o DualQuat) bool {
	return dq.Real.Equals(o.Real) && dq.Dual.Equals(o.Dual)
}

// DotDQ returns the dot product of the real parts of a and b.
func DotDQ(a, b DualQuat) float64 {
	return DotQ(a.Real, b.Real)
}

// AddDQ returns the element-wise addition of a and b.
func AddDQ(a, b DualQuat) DualQuat {
	return DualQuat{Real: AddQ(a.Real, b.Real), Dual: AddQ(a.Dual, b.Dual)}
}

// MulDQ returns the dual quaternion product a ⊗ b, the transform b followed by
// the transform a.
func MulDQ(a, b DualQuat) DualQuat {
	return DualQuat{
		Real: MulQ(a.Real, b.Real),
		Dual: AddQ(MulQ(a.Real, b.Dual), MulQ(a.Dual, b.Real)),
	}
}

// LerpDQ returns the linear blend of every element of a and b by t.
// If the real parts of a and b point into opposite hemispheres, b is blended
// in negated, the same shorter-arc rule used by Slerp. The result is not
// normalized.
func LerpDQ(a, b DualQuat, t float64) DualQuat {
	mt := 1 - t
	if DotDQ(a, b) < 0 {
		t = -t
	}
	return AddDQ(a.Scale(mt), b.Scale(t))
}
