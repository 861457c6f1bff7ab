package detection

import "testing"

func defaultGeometric() GeometricFilter {
	return GeometricFilter{
		MinAspectRatio: 2.8,
		MaxAspectRatio: 5.0,
		MinAreaRatio:   23.0,
		MaxAreaRatio:   300.0,
	}
}

func TestBoundingBox_Derived(t *testing.T) {
	b := BoundingBox{X: 5, Y: 10, Width: 30, Height: 10}

	if b.Area() != 300 {
		t.Errorf("Area: got %d, want 300", b.Area())
	}
	if b.AspectRatio() != 3.0 {
		t.Errorf("AspectRatio: got %f, want 3.0", b.AspectRatio())
	}
	r := b.Rect()
	if r.Min.X != 5 || r.Min.Y != 10 || r.Dx() != 30 || r.Dy() != 10 {
		t.Errorf("Rect: got %v", r)
	}
}

func TestBoundingBox_ZeroHeightAspect(t *testing.T) {
	b := BoundingBox{Width: 10, Height: 0}
	if b.AspectRatio() != 0 {
		t.Errorf("zero-height aspect ratio: got %f, want 0", b.AspectRatio())
	}
}

func TestAcceptAspect_Boundary(t *testing.T) {
	f := defaultGeometric()

	// Exactly at the lower bound passes.
	if !f.AcceptAspect(BoundingBox{Width: 28, Height: 10}) {
		t.Error("aspect ratio 2.8 should pass at the boundary")
	}
	// Just below it fails.
	if f.AcceptAspect(BoundingBox{Width: 279, Height: 100}) {
		t.Error("aspect ratio 2.79 should fail below the boundary")
	}
	// Exactly at the upper bound passes, just above fails.
	if !f.AcceptAspect(BoundingBox{Width: 50, Height: 10}) {
		t.Error("aspect ratio 5.0 should pass at the boundary")
	}
	if f.AcceptAspect(BoundingBox{Width: 501, Height: 100}) {
		t.Error("aspect ratio 5.01 should fail above the boundary")
	}
}

func TestAcceptArea_InverseRatio(t *testing.T) {
	f := defaultGeometric()
	total := 10000

	// ratio 25: within [23, 300]
	if !f.AcceptArea(BoundingBox{Width: 40, Height: 10}, total) {
		t.Error("area ratio 25 should pass")
	}
	// ratio 20: component too large relative to the frame
	if f.AcceptArea(BoundingBox{Width: 50, Height: 10}, total) {
		t.Error("area ratio 20 should fail (component too large)")
	}
	// ratio ~333: component too small relative to the frame
	if f.AcceptArea(BoundingBox{Width: 10, Height: 3}, total) {
		t.Error("area ratio 333 should fail (component too small)")
	}
	// zero-area box never passes
	if f.AcceptArea(BoundingBox{}, total) {
		t.Error("zero-area box should fail")
	}
}

func TestAccept_RequiresBothPredicates(t *testing.T) {
	f := defaultGeometric()
	total := 10000

	// Passes aspect (3.0) but area ratio 10000/300 = 33.3 also passes.
	if !f.Accept(BoundingBox{Width: 30, Height: 10}, total) {
		t.Error("box passing both predicates should be accepted")
	}
	// Aspect 1.0 fails even though area would pass.
	if f.Accept(BoundingBox{Width: 20, Height: 20}, total) {
		t.Error("box failing aspect ratio should be rejected")
	}
}
