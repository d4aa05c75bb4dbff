// Package scene implements the implicit surfaces a primary ray can hit.
//
// Two interchangeable Intersectors exist: a sphere found by sphere tracing its
// signed distance field, and the unit cube found with the slab method. Both are
// stateless and safe for concurrent use.
package scene

import (
	"fmt"
	"strings"

	"raycast/camera"
	"raycast/vmath"
)

// HitInfo is the result of one ray query.
type HitInfo struct {
	Position vmath.Vec3
	Distance float32
	Hit      bool
}

// Intersector finds the first surface point along a ray.
//
// dir must be unit length.
type Intersector interface {
	Intersect(origin, dir vmath.Vec3) HitInfo

	// Reference and Extent drive distance shading: a hit at Reference shades as 0
	// and a hit Extent away shades as 1.
	Reference() vmath.Vec3
	Extent() float32
}

// Kind selects a scene.
type Kind string

const (
	KindSphere Kind = "sphere"
	KindCube   Kind = "cube"

	// KindGradient has no geometry; the renderer draws a screen-space test pattern.
	KindGradient Kind = "gradient"
)

// ParseKind accepts a case-insensitive scene name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSphere, KindCube, KindGradient:
		return k, nil
	default:
		return "", fmt.Errorf("scene: unknown kind %q", s)
	}
}

// New returns the Intersector for kind. KindGradient has none and returns nil.
func New(kind Kind, p MarchParams) (Intersector, error) {
	switch kind {
	case KindSphere:
		return NewSphere(p), nil
	case KindCube:
		return Cube{}, nil
	case KindGradient:
		return nil, nil
	default:
		return nil, fmt.Errorf("scene: unknown kind %q", kind)
	}
}

// DefaultCamera returns the start pose for kind: outside the object, looking at it
// along +Z.
func DefaultCamera(kind Kind) camera.Camera {
	switch kind {
	case KindCube:
		return camera.Camera{Position: vmath.V3(0.5, 0.5, -2.5)}
	default:
		return camera.Camera{Position: vmath.V3(0, 0, -3)}
	}
}
