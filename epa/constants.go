package epa

import "math"

// maxValue is an unbounded boundSq for addPoint/maybeEnqueue callers that
// don't want to limit which new interior-footed triangles get queued.
const maxValue = math.MaxFloat64

// Bounds on the expanding polytope's working set, sized so a query has a
// deterministic worst-case cost regardless of how deep the shapes overlap.
const (
	// MaxTriangles caps the triangle pool (live + freed).
	MaxTriangles = 256
	// MaxPoints caps the shared support-point arrays.
	MaxPoints = 128
	// MaxEdgeLength bounds both the silhouette size and the breadth-first
	// walk used to discover it; a pair of shapes whose overlap produces a
	// larger silhouette than this gives up rather than expanding unbounded
	// state.
	MaxEdgeLength = 128
	// MinTriangleArea below which a triangle's normal is considered
	// unreliable and the triangle is excluded from the priority queue and
	// the final closest-face scan.
	MinTriangleArea = 1e-10
	// ConvergenceTolerance: once a new support point extends past the
	// current closest face by less than this, the face is accepted as
	// final.
	ConvergenceTolerance = 1e-4
)
