package math32

import "testing"

const eps = 1e-5

func near(a, b float32) bool {
	return Abs(a-b) < eps
}

func TestNormalizeZeroStaysZero(t *testing.T) {
	if got := (Vector3{}).Normalize(); got != (Vector3{}) {
		t.Fatalf("expected zero vector, got %v", got)
	}
	n := Vec3(3, 0, 4).Normalize()
	if !near(n.Length(), 1) || !near(n.X, 0.6) || !near(n.Z, 0.8) {
		t.Fatalf("unexpected normalized vector %v", n)
	}
}

func TestPlanarDropsHeight(t *testing.T) {
	v := Vec3(1, 7, -2).Planar()
	if v.Y != 0 || v.X != 1 || v.Z != -2 {
		t.Fatalf("expected [1,0,-2], got %v", v)
	}
}

func TestRotateY(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    Vector3
		angle float32
		want  Vector3
	}{
		{name: "identity", in: Vec3(0, 0, -1), angle: 0, want: Vec3(0, 0, -1)},
		{name: "quarter", in: Vec3(0, 0, -1), angle: Pi / 2, want: Vec3(-1, 0, 0)},
		{name: "half", in: Vec3(1, 2, 0), angle: Pi, want: Vec3(-1, 2, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.RotateY(tc.angle)
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) || !near(got.Z, tc.want.Z) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestYaw(t *testing.T) {
	if got := Vec3(0, 0, 1).Yaw(); !near(got, 0) {
		t.Fatalf("expected 0 for +Z, got %f", got)
	}
	if got := Vec3(1, 0, 0).Yaw(); !near(got, Pi/2) {
		t.Fatalf("expected pi/2 for +X, got %f", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.25, 0, 1) != 0.25 {
		t.Fatalf("clamp out of range")
	}
}
