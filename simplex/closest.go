package simplex

import "github.com/go-gl/mathgl/mgl64"

// ClosestOnLine returns the closest point on segment ab to the origin.
// The returned PointSet uses bit 0 for a, bit 1 for b.
func ClosestOnLine(a, b mgl64.Vec3, tauSq float64) ClosestPointResult {
	r := Bary2(a, b, tauSq)
	if r.V <= 0 {
		return ClosestPointResult{Point: a, Set: 0b01, Weights: [MaxSize]float64{0: 1}}
	}
	if r.U <= 0 {
		return ClosestPointResult{Point: b, Set: 0b10, Weights: [MaxSize]float64{1: 1}}
	}
	return ClosestPointResult{
		Point:   a.Mul(r.U).Add(b.Mul(r.V)),
		Set:     0b11,
		Weights: [MaxSize]float64{0: r.U, 1: r.V},
	}
}

// ClosestOnTriangle returns the closest point on triangle abc to the origin
// using Voronoi-region classification (Ericson, "Real-Time Collision
// Detection" 5.1.5), augmented with a degenerate-triangle fallback that
// honours mustIncludeC: when the caller just added c as the
// newest simplex vertex, results that drop c entirely (vertex a, vertex b,
// or edge ab) are disallowed in that fallback path.
//
// Bit 0 <-> a, bit 1 <-> b, bit 2 <-> c.
func ClosestOnTriangle(a, b, c mgl64.Vec3, mustIncludeC bool, tauSq float64) ClosestPointResult {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)

	if n.Dot(n) < 1e-10 {
		return closestOnDegenerateTriangle(a, b, c, mustIncludeC, tauSq)
	}

	ap := a.Mul(-1)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return ClosestPointResult{Point: a, Set: 0b001, Weights: [MaxSize]float64{0: 1}}
	}

	bp := b.Mul(-1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return ClosestPointResult{Point: b, Set: 0b010, Weights: [MaxSize]float64{1: 1}}
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return ClosestPointResult{
			Point:   a.Add(ab.Mul(v)),
			Set:     0b011,
			Weights: [MaxSize]float64{0: 1 - v, 1: v},
		}
	}

	cp := c.Mul(-1)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return ClosestPointResult{Point: c, Set: 0b100, Weights: [MaxSize]float64{2: 1}}
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return ClosestPointResult{
			Point:   a.Add(ac.Mul(w)),
			Set:     0b101,
			Weights: [MaxSize]float64{0: 1 - w, 2: w},
		}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return ClosestPointResult{
			Point:   b.Add(c.Sub(b).Mul(w)),
			Set:     0b110,
			Weights: [MaxSize]float64{1: 1 - w, 2: w},
		}
	}

	// Interior: project the origin onto the triangle's plane and express it
	// in barycentric form.
	br := Bary3(a, b, c, tauSq)
	point := a.Mul(br.U).Add(b.Mul(br.V)).Add(c.Mul(br.W))
	return ClosestPointResult{
		Point:   point,
		Set:     0b111,
		Weights: [MaxSize]float64{0: br.U, 1: br.V, 2: br.W},
	}
}

// closestOnDegenerateTriangle handles the zero-area fallback path: enumerate
// the vertices/edges allowed by mustIncludeC and return the candidate
// closest to the origin.
func closestOnDegenerateTriangle(a, b, c mgl64.Vec3, mustIncludeC bool, tauSq float64) ClosestPointResult {
	type candidate struct {
		result ClosestPointResult
		distSq float64
	}
	var best *candidate
	consider := func(r ClosestPointResult) {
		d := r.Point.Dot(r.Point)
		if best == nil || d < best.distSq {
			best = &candidate{result: r, distSq: d}
		}
	}

	if !mustIncludeC {
		consider(ClosestPointResult{Point: a, Set: 0b001, Weights: [MaxSize]float64{0: 1}})
		consider(ClosestPointResult{Point: b, Set: 0b010, Weights: [MaxSize]float64{1: 1}})
		consider(ClosestOnLine(a, b, tauSq).remap(0, 1))
	}
	consider(ClosestPointResult{Point: c, Set: 0b100, Weights: [MaxSize]float64{2: 1}})
	consider(ClosestOnLine(a, c, tauSq).remap(0, 2))
	consider(ClosestOnLine(b, c, tauSq).remap(1, 2))

	return best.result
}

// remap reindexes a 2-bit line ClosestPointResult (bits/weights 0,1) onto the
// given global bit indices, used when a degenerate-triangle fallback
// delegates to ClosestOnLine on an edge that isn't (vertex0, vertex1) of the
// caller's own numbering.
func (r ClosestPointResult) remap(bit0, bit1 int) ClosestPointResult {
	var set PointSet
	var weights [MaxSize]float64
	if r.Set.Bit(0) {
		set |= 1 << uint(bit0)
		weights[bit0] = r.Weights[0]
	}
	if r.Set.Bit(1) {
		set |= 1 << uint(bit1)
		weights[bit1] = r.Weights[1]
	}
	return ClosestPointResult{Point: r.Point, Set: set, Weights: weights}
}

// ClosestOnTetrahedron returns the closest point on tetrahedron abcd to the
// origin. d is assumed to be the most recently added simplex vertex;
// mustIncludeD is forwarded as mustIncludeC to whichever
// face-local triangle test contains d so the degenerate-triangle fallback
// never drops it outright.
//
// Bit 0<->a, bit 1<->b, bit 2<->c, bit 3<->d.
func ClosestOnTetrahedron(a, b, c, d mgl64.Vec3, mustIncludeD bool, tau float64) ClosestPointResult {
	outsideABC, outsideACD, outsideADB, outsideBDC := outsideFaces(a, b, c, d, tau)

	type face struct {
		outside      bool
		p0, p1, p2   mgl64.Vec3
		i0, i1, i2   int
		mustIncludeC bool
	}
	faces := [4]face{
		{outsideABC, a, b, c, 0, 1, 2, false},
		{outsideACD, a, c, d, 0, 2, 3, mustIncludeD},
		{outsideADB, a, b, d, 0, 1, 3, mustIncludeD},
		{outsideBDC, b, c, d, 1, 2, 3, mustIncludeD},
	}

	type candidate struct {
		result ClosestPointResult
		distSq float64
	}
	var best *candidate
	for _, f := range faces {
		if !f.outside {
			continue
		}
		r := ClosestOnTriangle(f.p0, f.p1, f.p2, f.mustIncludeC, tau*tau)
		global, weights := remapTriangleSet(r, f.i0, f.i1, f.i2)
		distSq := r.Point.Dot(r.Point)
		if best == nil || distSq < best.distSq {
			best = &candidate{result: ClosestPointResult{Point: r.Point, Set: global, Weights: weights}, distSq: distSq}
		}
	}

	if best == nil {
		// Origin lies inside all four faces: tetrahedron contains it.
		// Barycentric weights on the interior point are not needed by any
		// caller (GJK treats this as "overlap detected" and stops), so they
		// are left zero.
		return ClosestPointResult{Point: mgl64.Vec3{0, 0, 0}, Set: 0b1111}
	}
	return best.result
}

func remapTriangleSet(r ClosestPointResult, i0, i1, i2 int) (PointSet, [MaxSize]float64) {
	var global PointSet
	var weights [MaxSize]float64
	if r.Set.Bit(0) {
		global |= 1 << uint(i0)
		weights[i0] = r.Weights[0]
	}
	if r.Set.Bit(1) {
		global |= 1 << uint(i1)
		weights[i1] = r.Weights[1]
	}
	if r.Set.Bit(2) {
		global |= 1 << uint(i2)
		weights[i2] = r.Weights[2]
	}
	return global, weights
}

// outsideFaces determines, for each of the tetrahedron's four faces, whether
// the origin lies outside that face's supporting plane (the plane oriented
// so its normal points away from the tetrahedron's fourth vertex).
//
// When the tetrahedron's faces cannot be oriented consistently (near-zero
// volume), all four faces are conservatively flagged outside, forcing the
// caller to evaluate every face and keep the nearest.
func outsideFaces(a, b, c, d mgl64.Vec3, tau float64) (abc, acd, adb, bdc bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)

	volume := ab.Dot(ac.Cross(ad))
	if volume > -tau && volume < tau {
		return true, true, true, true
	}

	abcN := ab.Cross(ac)
	if abcN.Dot(ad) > 0 {
		abcN = abcN.Mul(-1)
	}
	acdN := ac.Cross(ad)
	if acdN.Dot(ab) > 0 {
		acdN = acdN.Mul(-1)
	}
	adbN := ad.Cross(ab)
	if adbN.Dot(ac) > 0 {
		adbN = adbN.Mul(-1)
	}
	bc := c.Sub(b)
	bd := d.Sub(b)
	bdcN := bd.Cross(bc)
	if bdcN.Dot(a.Sub(b)) > 0 {
		bdcN = bdcN.Mul(-1)
	}

	ao := a.Mul(-1)
	bo := b.Mul(-1)
	abc = abcN.Dot(ao) > tau
	acd = acdN.Dot(ao) > tau
	adb = adbN.Dot(ao) > tau
	bdc = bdcN.Dot(bo) > tau
	return abc, acd, adb, bdc
}
