package app

import (
	"fmt"
	"math"

	"raycast/internal/buildinfo"
	"raycast/vmath"
)

const radToDeg = 180 / math.Pi

func (a *App) hudLines(captured bool) []string {
	st := a.renderer.LastStats()
	p := a.cam.Position
	lines := []string{
		fmt.Sprintf("%s %s", a.kind, buildinfo.Short()),
		fmt.Sprintf("%3.0f fps  %5.2f ms  %d workers", a.fps, float64(st.Duration.Microseconds())/1000, st.Workers),
		fmt.Sprintf("pos %s", formatVec(p)),
		fmt.Sprintf("yaw %6.1f  pitch %5.1f", a.cam.Yaw()*radToDeg, a.cam.Pitch()*radToDeg),
	}
	if !captured {
		lines = append(lines, "click to look, esc quits")
	}
	return lines
}

func formatVec(v vmath.Vec3) string {
	return fmt.Sprintf("%6.2f %6.2f %6.2f", v.X, v.Y, v.Z)
}
