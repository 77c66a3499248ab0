package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	got := Normalize(Vec3{})
	if got != (Vec3{}) {
		t.Fatalf("Normalize(0) = %v, 期望零向量", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	got := Normalize(Vec3{3, 0, 4})
	approxEqual(t, got.Len(), 1, 1e-12, "len")
	approxEqual(t, got[0], 0.6, 1e-12, "x")
	approxEqual(t, got[2], 0.8, 1e-12, "z")
}

func TestFlatten(t *testing.T) {
	got := Flatten(Vec3{1, 5, -2})
	if got != (Vec3{1, 0, -2}) {
		t.Fatalf("Flatten = %v", got)
	}
}

// TestLookRotationForward 测试 LookRotation 的前向轴与目标方向一致
func TestLookRotationForward(t *testing.T) {
	tests := []struct {
		name string
		dir  Vec3
	}{
		{"正前方", Vec3{0, 0, 1}},
		{"右侧", Vec3{1, 0, 0}},
		{"正后方", Vec3{0, 0, -1}},
		{"斜向", Vec3{1, 0, 1}},
		{"带俯仰", Vec3{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Normalize(tt.dir)
			got := ForwardOf(LookRotation(tt.dir))
			for i := 0; i < 3; i++ {
				approxEqual(t, got[i], want[i], 1e-9, "forward component")
			}
		})
	}
}

func TestLookRotationZeroIsIdentity(t *testing.T) {
	q := LookRotation(Vec3{})
	if !q.ApproxEqual(mgl64.QuatIdent()) {
		t.Fatalf("LookRotation(0) = %v, 期望单位四元数", q)
	}
}

func TestYawDegrees(t *testing.T) {
	approxEqual(t, YawDegrees(LookRotation(Vec3{1, 0, 0})), 90, 1e-9, "yaw +x")
	approxEqual(t, YawDegrees(LookRotation(Vec3{0, 0, 1})), 0, 1e-9, "yaw +z")
	approxEqual(t, YawDegrees(LookRotation(Vec3{-1, 0, 0})), -90, 1e-9, "yaw -x")
}

func TestSlerpEndpoints(t *testing.T) {
	from := mgl64.QuatIdent()
	to := LookRotation(Vec3{1, 0, 0})

	if got := Slerp(from, to, 0); !got.ApproxEqual(from) {
		t.Fatalf("Slerp(t=0) = %v, want %v", got, from)
	}
	if got := Slerp(from, to, 1); AngleBetween(got, to) > 1e-6 {
		t.Fatalf("Slerp(t=1) = %v, want %v", got, to)
	}
}

func TestSlerpHalfway(t *testing.T) {
	from := mgl64.QuatIdent()
	to := LookRotation(Vec3{1, 0, 0})
	mid := Slerp(from, to, 0.5)
	approxEqual(t, YawDegrees(mid), 45, 1e-6, "yaw")
}

// TestSlerpShortestPath 测试目标四元数取反时仍走短弧
func TestSlerpShortestPath(t *testing.T) {
	from := mgl64.QuatIdent()
	to := LookRotation(Vec3{1, 0, 0}).Scale(-1)
	mid := Slerp(from, to, 0.5)
	approxEqual(t, YawDegrees(mid), 45, 1e-6, "yaw")
}

func TestAngleBetween(t *testing.T) {
	a := LookRotation(Vec3{0, 0, 1})
	b := LookRotation(Vec3{1, 0, 0})
	approxEqual(t, AngleBetween(a, b), 90, 1e-6, "angle")
	approxEqual(t, AngleBetween(a, a), 0, 1e-6, "same")
}

func TestTransformForward(t *testing.T) {
	tr := NewTransform(Vec3{1, 2, 3})
	f := tr.Forward()
	approxEqual(t, f[2], 1, 1e-12, "forward.z")
	if tr.Position != (Vec3{1, 2, 3}) {
		t.Fatalf("Position = %v", tr.Position)
	}
}
