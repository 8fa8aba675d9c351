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
	"fmt"
	"math"
)

// EulerOrder is the order in which the elemental rotations of a set of Euler
// angles are composed.
type EulerOrder int

const (
	// XYZ composes as Rx ⊗ Ry ⊗ Rz.
	XYZ EulerOrder = iota
	// XZY composes as Rx ⊗ Rz ⊗ Ry.
	XZY
	// YXZ composes as Ry ⊗ Rx ⊗ Rz.
	YXZ
	// YZX composes as Ry ⊗ Rz ⊗ Rx.
	YZX
	// ZXY composes as Rz ⊗ Rx ⊗ Ry.
	ZXY
	// ZYX composes as Rz ⊗ Ry ⊗ Rx. This is the order used by QuatFromEuler.
	ZYX
)

func (o EulerOrder) String() string {
	switch o {
	case XYZ:
		return "XYZ"
	case XZY:
		return "XZY"
	case YXZ:
		return "YXZ"
	case YZX:
		return "YZX"
	case ZXY:
		return "ZXY"
	case ZYX:
		return "ZYX"
	default:
		return fmt.Sprintf("EulerOrder(%d)", int(o))
	}
}

// halfToRad converts degrees to radians and halves them in one step.
const halfToRad = math.Pi / 360

// QuatFromEuler returns the rotation described by the intrinsic Tait-Bryan
// angles x, y and z in degrees, composed in ZYX order.
func QuatFromEuler(x, y, z float64) Quat {
	sx, cx := math.Sincos(x * halfToRad)
	sy, cy := math.Sincos(y * halfToRad)
	sz, cz := math.Sincos(z * halfToRad)
	return Quat{
		sx*cy*cz - cx*sy*sz,
		cx*sy*cz + sx*cy*sz,
		cx*cy*sz - sx*sy*cz,
		cx*cy*cz + sx*sy*sz,
	}
}

// QuatFromEulerOrder returns the rotation described by the angles x, y and z
// in degrees, composed in the given order. Unknown orders compose as ZYX.
func QuatFromEulerOrder(x, y, z float64, order EulerOrder) Quat {
	sx, cx := math.Sincos(x * halfToRad)
	sy, cy := math.Sincos(y * halfToRad)
	sz, cz := math.Sincos(z * halfToRad)
	rx, ry, rz := Quat{sx, 0, 0, cx}, Quat{0, sy, 0, cy}, Quat{0, 0, sz, cz}
	switch order {
	case XYZ:
		return MulQ(MulQ(rx, ry), rz)
	case XZY:
		return MulQ(MulQ(rx, rz), ry)
	case YXZ:
		return MulQ(MulQ(ry, rx), rz)
	case YZX:
		return MulQ(MulQ(ry, rz), rx)
	case ZXY:
		return MulQ(MulQ(rz, rx), ry)
	default:
		return MulQ(MulQ(rz, ry), rx)
	}
}
