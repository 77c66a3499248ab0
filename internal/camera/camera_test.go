package camera

import (
	"math"
	"testing"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// TestRigAxes 测试不同朝向下相机的前向与右向
func TestRigAxes(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float64
		fx, fy, fz float64
		rx, rz     float64
	}{
		{"默认朝向+Z", 0, 0, 0, 0, 1, 1, 0},
		{"右转90度", 90, 0, 1, 0, 0, 0, -1},
		{"向下看45度", 0, 45, 0, -math.Sqrt2 / 2, math.Sqrt2 / 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRig(tt.yaw, tt.pitch)
			f := r.Forward()
			approxEqual(t, f[0], tt.fx, 1e-9, "forward.x")
			approxEqual(t, f[1], tt.fy, 1e-9, "forward.y")
			approxEqual(t, f[2], tt.fz, 1e-9, "forward.z")
			right := r.Right()
			approxEqual(t, right[0], tt.rx, 1e-9, "right.x")
			approxEqual(t, right[1], 0, 1e-9, "right.y")
			approxEqual(t, right[2], tt.rz, 1e-9, "right.z")
		})
	}
}

func TestRigOrbitClampsPitchAndWrapsYaw(t *testing.T) {
	r := NewRig(170, 80)
	r.Orbit(20, 30)

	approxEqual(t, r.Yaw, -170, 1e-9, "yaw")
	approxEqual(t, r.Pitch, maxPitch, 1e-9, "pitch")
}

// TestRigStraightDown 垂直向下时前向量没有水平分量
func TestRigStraightDown(t *testing.T) {
	r := NewRig(0, 90)
	f := r.Forward()
	if math.Hypot(f[0], f[2]) > 1e-9 {
		t.Fatalf("forward = %v, 期望水平分量为零", f)
	}
}
