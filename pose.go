package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// Pose places a Shape in world space: a translation and rotation applied to
// the shape's local-space geometry.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity is the pose with no translation or rotation.
func Identity() Pose {
	return Pose{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()}
}
