package narrowphase

import "github.com/go-gl/mathgl/mgl64"

// pairHandler lets a specific (Kind, Kind) combination override the generic
// convex-vs-convex GJK/EPA path with shape-specific logic — a Plane, for
// instance, could be tested as a half-space rather than run through GJK.
// None of the shapes in package shapes need an override today; the table
// exists so one can be registered without touching CollideShapeVsShape
// itself.
type pairHandler func(a, b Shape, poseA, poseB Pose, initialDir mgl64.Vec3) (CollideShapeHit, error)

var collideOverrides = map[[2]Kind]pairHandler{}

// RegisterCollideOverride installs a specialized handler for shape kinds ka
// and kb, used in either order. It is not safe to call concurrently with
// queries; callers register overrides during program initialization.
func RegisterCollideOverride(ka, kb Kind, handler pairHandler) {
	collideOverrides[[2]Kind{ka, kb}] = handler
}

// lookupOverride returns a registered handler for the (ka, kb) pair and
// whether the shapes must be swapped (when only (kb, ka) was registered) so
// the caller can invert the result back into (a, b) order.
func lookupOverride(ka, kb Kind) (h pairHandler, swapped, found bool) {
	if h, ok := collideOverrides[[2]Kind{ka, kb}]; ok {
		return h, false, true
	}
	if h, ok := collideOverrides[[2]Kind{kb, ka}]; ok {
		return h, true, true
	}
	return nil, false, false
}

func invertHit(h CollideShapeHit) CollideShapeHit {
	h.Normal = h.Normal.Mul(-1)
	h.PointA, h.PointB = h.PointB, h.PointA
	return h
}
