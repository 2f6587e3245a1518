package gjk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rivenphys/narrowphase/support"
)

func sphereSupport(center mgl64.Vec3, radius float64) support.Function {
	return support.Transformed{
		Inner: support.AddConvexRadius{
			Inner:  support.Point{At: mgl64.Vec3{0, 0, 0}},
			Radius: radius,
		},
		Translation: center,
	}
}

func boxSupport(center mgl64.Vec3, halfExtents mgl64.Vec3) support.Function {
	raw := support.Raw{
		SupportFn: func(d mgl64.Vec3) mgl64.Vec3 {
			sign := func(x float64) float64 {
				if x >= 0 {
					return 1
				}
				return -1
			}
			return mgl64.Vec3{
				sign(d.X()) * halfExtents.X(),
				sign(d.Y()) * halfExtents.Y(),
				sign(d.Z()) * halfExtents.Z(),
			}
		},
	}
	return support.Transformed{Inner: raw, Translation: center}
}

func TestGJKClosestPoints(t *testing.T) {
	t.Run("separated spheres along x-axis", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{4, 0, 0}, 1.0)

		res := GJKClosestPoints(a, b, mgl64.Vec3{1, 0, 0}, MaxValue)
		if res.Overlap() {
			t.Fatalf("expected no overlap, got overlap")
		}

		got := math.Sqrt(res.DistanceSq)
		want := 2.0
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("distance = %v, want %v", got, want)
		}
	})

	t.Run("overlapping spheres report overlap", func(t *testing.T) {
		a := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		b := sphereSupport(mgl64.Vec3{0.5, 0, 0}, 1.0)

		res := GJKClosestPoints(a, b, mgl64.Vec3{1, 0, 0}, MaxValue)
		if !res.Overlap() {
			t.Fatalf("expected overlap, distance^2 = %v", res.DistanceSq)
		}
	})

	t.Run("separated boxes along y-axis", func(t *testing.T) {
		a := boxSupport(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		b := boxSupport(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 1, 1})

		res := GJKClosestPoints(a, b, mgl64.Vec3{0, 1, 0}, MaxValue)
		if res.Overlap() {
			t.Fatalf("expected no overlap, got overlap")
		}

		got := math.Sqrt(res.DistanceSq)
		want := 3.0
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("distance = %v, want %v", got, want)
		}
	})

	t.Run("touching boxes are indeterminate, not confidently separated", func(t *testing.T) {
		a := boxSupport(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
		b := boxSupport(mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1, 1, 1})

		res := GJKClosestPoints(a, b, mgl64.Vec3{1, 0, 0}, MaxValue)
		if res.Status != StatusIndeterminate {
			t.Fatalf("Status = %v, want StatusIndeterminate", res.Status)
		}
		if !res.Overlap() {
			t.Errorf("Overlap() = false, want true so the caller falls back to EPA")
		}
	})
}

func TestGJKCastRay(t *testing.T) {
	t.Run("ray hits sphere head-on", func(t *testing.T) {
		shape := sphereSupport(mgl64.Vec3{5, 0, 0}, 1.0)
		res := GJKCastRay(shape, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 10.0, true)

		if !res.Hit {
			t.Fatalf("expected hit")
		}
		want := 4.0
		if math.Abs(res.Fraction-want) > 1e-4 {
			t.Errorf("fraction = %v, want %v", res.Fraction, want)
		}
	})

	t.Run("ray misses sphere off to the side", func(t *testing.T) {
		shape := sphereSupport(mgl64.Vec3{5, 5, 0}, 1.0)
		res := GJKCastRay(shape, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 10.0, true)

		if res.Hit {
			t.Fatalf("expected miss, got fraction %v", res.Fraction)
		}
	})

	t.Run("ray exceeding maxFraction reports no hit", func(t *testing.T) {
		shape := sphereSupport(mgl64.Vec3{20, 0, 0}, 1.0)
		res := GJKCastRay(shape, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 5.0, true)

		if res.Hit {
			t.Fatalf("expected no hit within maxFraction, got fraction %v", res.Fraction)
		}
	})

	t.Run("ray starting inside a solid shape hits at fraction 0", func(t *testing.T) {
		shape := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		res := GJKCastRay(shape, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 10.0, true)

		if !res.Hit || res.Fraction != 0 {
			t.Fatalf("expected hit at fraction 0, got Hit=%v Fraction=%v", res.Hit, res.Fraction)
		}
	})

	t.Run("ray starting inside a hollow shape reports no hit", func(t *testing.T) {
		shape := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)
		res := GJKCastRay(shape, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 10.0, false)

		if res.Hit {
			t.Fatalf("expected no hit, got fraction %v", res.Fraction)
		}
	})
}

func TestGJKCastShape(t *testing.T) {
	t.Run("moving sphere hits stationary sphere", func(t *testing.T) {
		stationary := sphereSupport(mgl64.Vec3{10, 0, 0}, 1.0)
		moving := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)

		res := GJKCastShape(stationary, moving, mgl64.Vec3{1, 0, 0}, 20.0)
		if !res.Hit {
			t.Fatalf("expected hit")
		}
		want := 8.0
		if math.Abs(res.Fraction-want) > 1e-4 {
			t.Errorf("fraction = %v, want %v", res.Fraction, want)
		}
	})

	t.Run("moving sphere misses perpendicular stationary sphere", func(t *testing.T) {
		stationary := sphereSupport(mgl64.Vec3{10, 10, 0}, 1.0)
		moving := sphereSupport(mgl64.Vec3{0, 0, 0}, 1.0)

		res := GJKCastShape(stationary, moving, mgl64.Vec3{1, 0, 0}, 20.0)
		if res.Hit {
			t.Fatalf("expected miss, got fraction %v", res.Fraction)
		}
	})
}
