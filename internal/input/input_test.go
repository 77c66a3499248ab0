package input

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

// TestStateSource 测试 State 快照的轴与按键查询
func TestStateSource(t *testing.T) {
	s := &State{X: 0.6, Z: -0.8, Sprint: true, Jump: true}

	approxEqual(t, s.Axis(Horizontal), 0.6, 0, "Horizontal")
	approxEqual(t, s.Axis(Vertical), -0.8, 0, "Vertical")
	approxEqual(t, s.Axis(Axis("Mouse X")), 0, 0, "unknown axis")

	if !s.Held(SprintKey) {
		t.Error("Sprint 应为按住状态")
	}
	if !s.Pressed(JumpKey) {
		t.Error("Jump 应为按下状态")
	}
	if s.Held(KeyW) {
		t.Error("W 不应被按住")
	}

	s.SetHeld(KeyW, true)
	s.SetPressed(KeyD, true)
	if !s.Held(KeyW) || !s.Pressed(KeyD) {
		t.Error("SetHeld/SetPressed 未生效")
	}
}

func TestNilStateReportsNothing(t *testing.T) {
	var s *State
	if s.Axis(Horizontal) != 0 || s.Held(SprintKey) || s.Pressed(JumpKey) {
		t.Fatal("nil State 应当没有任何输入")
	}
}

// TestRamp 测试数字按键到模拟轴的渐变
func TestRamp(t *testing.T) {
	tests := []struct {
		name   string
		steps  []struct{ neg, pos bool }
		dt     float64
		expect float64
	}{
		{
			name:   "按住正向一帧",
			steps:  []struct{ neg, pos bool }{{false, true}},
			dt:     0.1,
			expect: 0.3,
		},
		{
			name:   "按住足够久达到1",
			steps:  []struct{ neg, pos bool }{{false, true}, {false, true}, {false, true}, {false, true}},
			dt:     0.1,
			expect: 1.0,
		},
		{
			name:   "松开后按重力回落",
			steps:  []struct{ neg, pos bool }{{false, true}, {false, true}, {false, false}},
			dt:     0.1,
			expect: 0.3,
		},
		{
			name:   "反向按下立即归零再增加",
			steps:  []struct{ neg, pos bool }{{false, true}, {false, true}, {true, false}},
			dt:     0.1,
			expect: -0.3,
		},
		{
			name:   "同时按下两侧为零",
			steps:  []struct{ neg, pos bool }{{true, true}},
			dt:     0.1,
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRamp()
			var got float64
			for _, s := range tt.steps {
				got = r.Update(s.neg, s.pos, tt.dt)
			}
			approxEqual(t, got, tt.expect, 1e-9, "axis")
			approxEqual(t, r.Value(), tt.expect, 1e-9, "Value()")
		})
	}
}

func TestRampReset(t *testing.T) {
	r := NewRamp()
	r.Update(false, true, 1)
	r.Reset()
	approxEqual(t, r.Value(), 0, 0, "after reset")
}

// TestEdge 测试按键边沿检测只在按下的那一帧触发
func TestEdge(t *testing.T) {
	var e Edge
	seq := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}
	for i, down := range seq {
		if got := e.Update(down); got != want[i] {
			t.Fatalf("step %d: Update(%t) = %t, 期望 %t", i, down, got, want[i])
		}
	}
}
