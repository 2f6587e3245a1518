package narrowphase

// SubShapeID identifies one convex piece within a compound shape.
// None of the shapes in package shapes are compounds, so
// every query here reports InvalidSubShapeID for its own shape(s); the
// field exists so a caller layering compound shapes on top of this package
// has somewhere to put its own IDs.
type SubShapeID uint32

const InvalidSubShapeID SubShapeID = 0

// BodyID identifies shape B's owning rigid body. The narrowphase core never
// interprets it — it's threaded through from the caller to the hit record
// purely as a convenience for collectors filtering by body.
type BodyID uint32

const InvalidBodyID BodyID = 0

// MaterialID identifies the surface material a hit landed on.
type MaterialID uint32

const InvalidMaterialID MaterialID = 0
