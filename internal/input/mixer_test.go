package input

import "testing"

// TestMixer 测试键盘斜坡与摇杆覆盖的合成
func TestMixer(t *testing.T) {
	const dt = 0.1
	tests := []struct {
		name   string
		frames []Reading
		wantX  float64
		wantZ  float64
	}{
		{"无输入", []Reading{{}}, 0, 0},
		{"键盘斜坡", []Reading{{Forward: true}, {Forward: true}}, 0, 0.6},
		{"键盘斜坡封顶", []Reading{{Right: true}, {Right: true}, {Right: true}, {Right: true}}, 1, 0},
		{"摇杆覆盖键盘", []Reading{{Right: true, StickX: -0.7}}, -0.7, 0},
		{"死区内摇杆忽略", []Reading{{Forward: true, StickZ: 0.15}}, 0, 0.3},
		{"摇杆超出范围截断", []Reading{{StickX: 1.4, StickZ: -2}}, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMixer()
			for _, r := range tt.frames {
				m.Update(r, dt)
			}
			approxEqual(t, m.Axis(Horizontal), tt.wantX, 1e-9, "Horizontal")
			approxEqual(t, m.Axis(Vertical), tt.wantZ, 1e-9, "Vertical")
		})
	}
}

func TestMixerButtons(t *testing.T) {
	m := NewMixer()
	m.Update(Reading{Sprint: true, Jump: true}, 0.1)
	if !m.Held(SprintKey) || !m.Pressed(JumpKey) {
		t.Fatalf("state = %+v, 期望冲刺与跳跃", m.State())
	}

	m.Update(Reading{Sprint: true}, 0.1)
	if m.Pressed(JumpKey) {
		t.Error("跳跃只在按下的那一帧有效")
	}
	if !m.Held(SprintKey) {
		t.Error("冲刺应保持")
	}
}
