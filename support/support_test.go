package support

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTransformed(t *testing.T) {
	inner := Raw{SupportFn: func(mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{1, 0, 0} }}
	wrapped := Transformed{Inner: inner, Translation: mgl64.Vec3{5, 0, 0}, Rotation: mgl64.QuatIdent()}

	got := wrapped.GetSupport(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{6, 0, 0}
	if got != want {
		t.Errorf("GetSupport = %v, want %v", got, want)
	}
}

func TestAddConvexRadius(t *testing.T) {
	inner := Raw{SupportFn: func(mgl64.Vec3) mgl64.Vec3 { return mgl64.Vec3{0, 0, 0} }}
	wrapped := AddConvexRadius{Inner: inner, Radius: 2}

	got := wrapped.GetSupport(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{2, 0, 0}
	if got != want {
		t.Errorf("GetSupport = %v, want %v", got, want)
	}
	if wrapped.ConvexRadius() != 2 {
		t.Errorf("ConvexRadius = %v, want 2", wrapped.ConvexRadius())
	}
}

func TestPoint(t *testing.T) {
	p := Point{At: mgl64.Vec3{3, 4, 5}}
	if got := p.GetSupport(mgl64.Vec3{-1, -1, -1}); got != p.At {
		t.Errorf("GetSupport = %v, want %v regardless of direction", got, p.At)
	}
	if p.ConvexRadius() != 0 {
		t.Errorf("ConvexRadius = %v, want 0", p.ConvexRadius())
	}
}
