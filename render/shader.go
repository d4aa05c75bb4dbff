package render

import (
	"raycast/camera"
	"raycast/scene"
	"raycast/vmath"
)

// View is the immutable per-frame input shared by all workers.
type View struct {
	Position vmath.Vec3
	Forward  vmath.Vec3
	Right    vmath.Vec3
	Up       vmath.Vec3

	Width  int
	Height int
}

// NewView snapshots cam for a width×height frame.
func NewView(cam camera.Camera, width, height int) View {
	f, r, u := cam.Basis()
	return View{
		Position: cam.Position,
		Forward:  f,
		Right:    r,
		Up:       u,
		Width:    width,
		Height:   height,
	}
}

// NDC maps the centre of pixel (x, y) to [-1,1]². Row 0 is the top of the image.
func (v *View) NDC(x, y int) (u, w float32) {
	u = float32(2*x+1)/float32(v.Width) - 1
	w = 1 - float32(2*y+1)/float32(v.Height)
	return u, w
}

// PrimaryRay returns the unit direction through pixel (x, y). The horizontal
// offset is scaled by the aspect ratio so pixels stay square.
func (v *View) PrimaryRay(x, y int) vmath.Vec3 {
	u, w := v.NDC(x, y)
	u *= float32(v.Width) / float32(v.Height)
	d := v.Forward.Add(v.Right.Scale(u)).Add(v.Up.Scale(w))
	return vmath.Normalize(d)
}

// Shader computes the color of one pixel. Implementations must be safe for
// concurrent use; the renderer calls them from several goroutines.
type Shader interface {
	Shade(x, y int, v *View) Color
}

// SceneShader casts a primary ray into Scene and shades by distance from the
// scene's reference point.
type SceneShader struct {
	Scene      scene.Intersector
	Background Color
}

func NewSceneShader(s scene.Intersector) *SceneShader {
	return &SceneShader{Scene: s, Background: Background}
}

func (s *SceneShader) Shade(x, y int, v *View) Color {
	hit := s.Scene.Intersect(v.Position, v.PrimaryRay(x, y))
	if !hit.Hit {
		return s.Background
	}
	return DistanceShade(hit.Position, s.Scene.Reference(), s.Scene.Extent())
}

// DistanceShade maps the distance from p to ref, in units of extent, onto an
// orange-to-blue ramp. It is monotonic in distance and is not clamped.
func DistanceShade(p, ref vmath.Vec3, extent float32) Color {
	if extent <= 0 {
		extent = 1
	}
	s := vmath.Len(p.Sub(ref)) / extent
	return Color{
		R: channel(255 * s),
		G: channel(160 * s),
		B: channel(255 * (1 - s)),
	}
}

// GradientShader is a scene-free test pattern: red grows left to right and blue
// top to bottom.
type GradientShader struct{}

func (GradientShader) Shade(x, y int, v *View) Color {
	return Color{
		R: channel(float32(x) / (float32(v.Width) / 255)),
		B: channel(float32(y) / (float32(v.Height) / 255)),
	}
}

// NewShader returns the shader for kind.
func NewShader(kind scene.Kind, p scene.MarchParams) (Shader, error) {
	if kind == scene.KindGradient {
		return GradientShader{}, nil
	}
	in, err := scene.New(kind, p)
	if err != nil {
		return nil, err
	}
	return NewSceneShader(in), nil
}
