package simplex

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClosestOnLine(t *testing.T) {
	t.Run("origin projects onto interior of segment", func(t *testing.T) {
		r := ClosestOnLine(mgl64.Vec3{-1, 1, 0}, mgl64.Vec3{1, 1, 0}, 1e-20)
		if r.Set != 0b11 {
			t.Fatalf("Set = %b, want 0b11", r.Set)
		}
		want := mgl64.Vec3{0, 1, 0}
		if r.Point.Sub(want).Len() > 1e-9 {
			t.Errorf("Point = %v, want %v", r.Point, want)
		}
		if math.Abs(r.Weights[0]+r.Weights[1]-1) > 1e-9 {
			t.Errorf("weights don't sum to 1: %v", r.Weights)
		}
	})

	t.Run("origin closest to vertex a", func(t *testing.T) {
		r := ClosestOnLine(mgl64.Vec3{1, 1, 0}, mgl64.Vec3{2, 2, 0}, 1e-20)
		if r.Set != 0b01 {
			t.Fatalf("Set = %b, want 0b01", r.Set)
		}
		if r.Weights[0] != 1 {
			t.Errorf("Weights[0] = %v, want 1", r.Weights[0])
		}
	})

	t.Run("origin closest to vertex b", func(t *testing.T) {
		r := ClosestOnLine(mgl64.Vec3{2, 2, 0}, mgl64.Vec3{1, 1, 0}, 1e-20)
		if r.Set != 0b10 {
			t.Fatalf("Set = %b, want 0b10", r.Set)
		}
		if r.Weights[1] != 1 {
			t.Errorf("Weights[1] = %v, want 1", r.Weights[1])
		}
	})
}

func TestClosestOnTriangle(t *testing.T) {
	t.Run("origin projects onto interior", func(t *testing.T) {
		a := mgl64.Vec3{-1, -1, 1}
		b := mgl64.Vec3{1, -1, 1}
		c := mgl64.Vec3{0, 1, 1}
		r := ClosestOnTriangle(a, b, c, true, 1e-20)
		if r.Set != 0b111 {
			t.Fatalf("Set = %b, want 0b111", r.Set)
		}
		want := mgl64.Vec3{0, 0, 1}
		if r.Point.Sub(want).Len() > 1e-6 {
			t.Errorf("Point = %v, want ~%v", r.Point, want)
		}
		sum := r.Weights[0] + r.Weights[1] + r.Weights[2]
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("weights don't sum to 1: %v", r.Weights)
		}
	})

	t.Run("origin closest to vertex a", func(t *testing.T) {
		a := mgl64.Vec3{1, 1, 1}
		b := mgl64.Vec3{2, 1, 1}
		c := mgl64.Vec3{1, 2, 1}
		r := ClosestOnTriangle(a, b, c, true, 1e-20)
		if r.Set != 0b001 {
			t.Fatalf("Set = %b, want 0b001", r.Set)
		}
		if r.Weights[0] != 1 {
			t.Errorf("Weights[0] = %v, want 1", r.Weights[0])
		}
	})

	t.Run("origin closest to edge ab", func(t *testing.T) {
		a := mgl64.Vec3{-1, 1, 0}
		b := mgl64.Vec3{1, 1, 0}
		c := mgl64.Vec3{0, 3, 0}
		r := ClosestOnTriangle(a, b, c, true, 1e-20)
		if r.Set != 0b011 {
			t.Fatalf("Set = %b, want 0b011", r.Set)
		}
	})
}

func TestClosestOnTetrahedron(t *testing.T) {
	t.Run("origin inside tetrahedron", func(t *testing.T) {
		a := mgl64.Vec3{1, 1, 1}
		b := mgl64.Vec3{-1, 1, -1}
		c := mgl64.Vec3{-1, -1, 1}
		d := mgl64.Vec3{1, -1, -1}
		r := ClosestOnTetrahedron(a, b, c, d, true, 1e-10)
		if r.Set != 0b1111 {
			t.Fatalf("Set = %b, want 0b1111 (origin enclosed)", r.Set)
		}
	})

	t.Run("origin outside, closest face excludes d", func(t *testing.T) {
		a := mgl64.Vec3{-1, -1, 5}
		b := mgl64.Vec3{1, -1, 5}
		c := mgl64.Vec3{0, 1, 5}
		d := mgl64.Vec3{0, 0, 10}
		r := ClosestOnTetrahedron(a, b, c, d, true, 1e-10)
		if r.Set == 0b1111 {
			t.Fatalf("expected origin outside tetrahedron")
		}
		if r.Point.Z() <= 0 {
			t.Errorf("expected closest point on the near face, got %v", r.Point)
		}
	})
}
