package simplex

import "github.com/go-gl/mathgl/mgl64"

// Bary2Result is the (u, v) weight pair produced by projecting the origin
// onto a line segment, plus whether the underlying segment was non-degenerate.
type Bary2Result struct {
	U, V    float64
	IsValid bool
}

// Bary2 computes (u, v) with u+v=1 such that u*a + v*b is the foot of the
// perpendicular from the origin onto line ab.
//
// When the segment is shorter than tau (degenerate), it falls back to
// whichever endpoint is closer to the origin and reports IsValid=false; the
// caller must not treat the degenerate result as a genuine interior point.
func Bary2(a, b mgl64.Vec3, tauSq float64) Bary2Result {
	ab := b.Sub(a)
	d := ab.Dot(ab)
	if d < tauSq {
		if a.Dot(a) < b.Dot(b) {
			return Bary2Result{U: 1, V: 0, IsValid: false}
		}
		return Bary2Result{U: 0, V: 1, IsValid: false}
	}

	v := -a.Dot(ab) / d
	u := 1 - v
	return Bary2Result{U: u, V: v, IsValid: true}
}

// Bary3Result is the (u, v, w) weight triple projecting the origin onto a
// triangle's plane.
type Bary3Result struct {
	U, V, W float64
	IsValid bool
}

// Bary3 computes (u, v, w) with u+v+w=1 projecting the origin onto triangle
// abc's plane, using a two-subspace solve anchored at whichever of vertex a
// or vertex c gives the better-conditioned basis (the one that leaves out the
// longer of edges ab/bc).
func Bary3(a, b, c mgl64.Vec3, tauSq float64) Bary3Result {
	ab := b.Sub(a)
	ac := c.Sub(a)
	bc := c.Sub(b)

	d00 := ab.Dot(ab)
	d11 := ac.Dot(ac)
	d22 := bc.Dot(bc)

	if d00 <= d22 {
		// Basis (ab, ac) anchored at a.
		d01 := ab.Dot(ac)
		det := d00*d11 - d01*d01
		if det < 1e-12 {
			return bary3Degenerate(a, b, c, d00, d22, tauSq)
		}

		ao := a.Mul(-1)
		e0 := ao.Dot(ab)
		e1 := ao.Dot(ac)
		v := (d11*e0 - d01*e1) / det
		w := (d00*e1 - d01*e0) / det
		u := 1 - v - w
		return Bary3Result{U: u, V: v, W: w, IsValid: true}
	}

	// Basis (ac, bc) anchored at c: u = weight on a, v = weight on b.
	d01 := ac.Dot(bc)
	det := d11*d22 - d01*d01
	if det < 1e-12 {
		return bary3Degenerate(a, b, c, d00, d22, tauSq)
	}

	co := c.Mul(-1)
	e0 := co.Dot(ac)
	e1 := co.Dot(bc)
	// ac and bc point toward c, the opposite sense of the a-anchored basis
	// above, so the raw solve yields the negated weights; flip them back
	// before deriving w.
	u := -(d22*e0 - d01*e1) / det
	v := -(d11*e1 - d01*e0) / det
	w := 1 - u - v
	return Bary3Result{U: u, V: v, W: w, IsValid: true}
}

// bary3Degenerate handles a zero-area triangle by delegating to Bary2 on the
// longest edge and zero-filling the unused coordinate.
func bary3Degenerate(a, b, c mgl64.Vec3, d00, d22, tauSq float64) Bary3Result {
	ac := c.Sub(a)
	d11 := ac.Dot(ac)
	if d00 >= d22 && d00 >= d11 {
		r := Bary2(a, b, tauSq)
		return Bary3Result{U: r.U, V: r.V, W: 0, IsValid: false}
	}
	if d11 >= d22 {
		r := Bary2(a, c, tauSq)
		return Bary3Result{U: r.U, V: 0, W: r.V, IsValid: false}
	}
	r := Bary2(b, c, tauSq)
	return Bary3Result{U: 0, V: r.U, W: r.V, IsValid: false}
}
