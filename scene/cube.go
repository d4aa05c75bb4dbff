package scene

import (
	"github.com/chewxy/math32"

	"raycast/vmath"
)

// Cube is the axis-aligned unit cube [0,1]³, intersected with the slab method.
//
// Zero direction components divide to ±Inf, which the min/max interval logic
// handles without a guard.
type Cube struct{}

var (
	cubeMin    = vmath.V3(0, 0, 0)
	cubeMax    = vmath.V3(1, 1, 1)
	cubeCenter = vmath.V3(0.5, 0.5, 0.5)
)

func (Cube) Reference() vmath.Vec3 { return cubeCenter }

// Extent is the centre-to-corner distance, √3/2.
func (Cube) Extent() float32 { return math32.Sqrt(3) / 2 }

func (Cube) Intersect(origin, dir vmath.Vec3) HitInfo {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	slab := func(o, d, lo, hi float32) {
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		tmin = max(tmin, min(t1, t2))
		tmax = min(tmax, max(t1, t2))
	}
	slab(origin.X, dir.X, cubeMin.X, cubeMax.X)
	slab(origin.Y, dir.Y, cubeMin.Y, cubeMax.Y)
	slab(origin.Z, dir.Z, cubeMin.Z, cubeMax.Z)

	if !(tmax >= tmin && tmax >= 0) {
		return HitInfo{}
	}
	t := tmin
	if t < 0 {
		// Origin is inside the cube.
		t = tmax
	}
	return HitInfo{Position: origin.Add(dir.Scale(t)), Distance: t, Hit: true}
}
