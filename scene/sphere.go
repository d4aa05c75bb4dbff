package scene

import "raycast/vmath"

// MarchParams bounds the sphere tracer.
type MarchParams struct {
	MaxSteps    int
	Epsilon     float32
	MaxDistance float32
	Radius      float32
}

// DefaultMarchParams returns 100 steps, epsilon 0.005, max travel 10, radius 0.5.
func DefaultMarchParams() MarchParams {
	return MarchParams{
		MaxSteps:    100,
		Epsilon:     0.005,
		MaxDistance: 10,
		Radius:      0.5,
	}
}

// Sphere is a sphere centred on the origin, intersected by raymarching.
type Sphere struct {
	p MarchParams
}

// NewSphere fills zero fields of p from DefaultMarchParams.
func NewSphere(p MarchParams) Sphere {
	def := DefaultMarchParams()
	if p.MaxSteps <= 0 {
		p.MaxSteps = def.MaxSteps
	}
	if p.Epsilon <= 0 {
		p.Epsilon = def.Epsilon
	}
	if p.MaxDistance <= 0 {
		p.MaxDistance = def.MaxDistance
	}
	if p.Radius <= 0 {
		p.Radius = def.Radius
	}
	return Sphere{p: p}
}

func (s Sphere) Params() MarchParams { return s.p }

func (s Sphere) Reference() vmath.Vec3 { return vmath.Vec3{} }
func (s Sphere) Extent() float32       { return s.p.Radius }

// Distance is the signed distance from point to the surface.
func (s Sphere) Distance(point vmath.Vec3) float32 {
	return vmath.Len(point) - s.p.Radius
}

func (s Sphere) Intersect(origin, dir vmath.Vec3) HitInfo {
	p := origin
	var travelled float32
	for range s.p.MaxSteps {
		d := s.Distance(p)
		if d < s.p.Epsilon {
			return HitInfo{Position: p, Distance: travelled, Hit: true}
		}
		if travelled > s.p.MaxDistance {
			break
		}
		p = p.Add(dir.Scale(d))
		travelled += d
	}
	return HitInfo{Position: p, Distance: travelled}
}
