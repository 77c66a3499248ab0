package locomotion

import (
	"strings"
	"testing"
)

func TestVerticalSample(t *testing.T) {
	tests := []struct {
		name     string
		from     GroundState
		grounded bool
		want     Transition
	}{
		{"空中落地", Airborne, true, Landed},
		{"离开地面", Grounded, false, LeftGround},
		{"保持着地", Grounded, true, NoTransition},
		{"保持空中", Airborne, false, NoTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vertical{State: tt.from}
			if got := v.Sample(tt.grounded); got != tt.want {
				t.Fatalf("Sample(%v) = %v, want %v", tt.grounded, got, tt.want)
			}
		})
	}
}

func TestVerticalSettle(t *testing.T) {
	tests := []struct {
		name     string
		state    GroundState
		velocity float64
		want     float64
		settled  bool
	}{
		{"着地下落", Grounded, -12, GroundedVelocity, true},
		{"着地上升保持", Grounded, 3, 3, false},
		{"着地静止保持", Grounded, 0, 0, false},
		{"空中不处理", Airborne, -12, -12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vertical{State: tt.state, Velocity: tt.velocity}
			if got := v.Settle(); got != tt.settled {
				t.Fatalf("Settle() = %v, want %v", got, tt.settled)
			}
			if v.Velocity != tt.want {
				t.Fatalf("velocity = %v, want %v", v.Velocity, tt.want)
			}
		})
	}
}

func TestVerticalJumpAndIntegrate(t *testing.T) {
	v := Vertical{State: Grounded, Velocity: GroundedVelocity}
	if !v.Jump(6) || v.Velocity != 6 {
		t.Fatalf("着地起跳失败: %+v", v)
	}
	v.Integrate(-20, 0.5)
	if v.Velocity != 6 {
		t.Fatalf("着地时不应积分重力, velocity=%v", v.Velocity)
	}

	v.Sample(false)
	if v.Jump(10) {
		t.Fatal("空中不能起跳")
	}
	v.Integrate(-20, 0.5)
	if v.Velocity != -4 {
		t.Fatalf("velocity = %v, want -4", v.Velocity)
	}
}

func TestGroundStateString(t *testing.T) {
	if Grounded.String() != "grounded" || Airborne.String() != "airborne" {
		t.Fatalf("unexpected names: %s %s", Grounded, Airborne)
	}
	if GroundState(7).String() != "unknown" {
		t.Fatal("未知状态应返回 unknown")
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr string
	}{
		{"默认合法", func(*Settings) {}, ""},
		{"空旋转模式", func(s *Settings) { s.RotationMode = "" }, ""},
		{"负行走速度", func(s *Settings) { s.WalkSpeed = -1 }, "walk speed"},
		{"负冲刺速度", func(s *Settings) { s.SprintSpeed = -1 }, "sprint speed"},
		{"负跳跃力", func(s *Settings) { s.JumpForce = -1 }, "jump force"},
		{"旋转速度过大", func(s *Settings) { s.DesiredRotationSpeed = 1.5 }, "rotation speed"},
		{"负阈值", func(s *Settings) { s.AllowPlayerRotation = -0.1 }, "threshold"},
		{"起步时间越界", func(s *Settings) { s.StartAnimTime = 2 }, "start anim"},
		{"停止时间越界", func(s *Settings) { s.StopAnimTime = -1 }, "stop anim"},
		{"未知模式", func(s *Settings) { s.RotationMode = "spring" }, "unknown rotation mode"},
		{"指数模式缺参考帧率", func(s *Settings) {
			s.RotationMode = RotationExponential
			s.ReferenceRate = 0
		}, "reference rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() 返回错误: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, 期望包含 %q", err, tt.wantErr)
			}
		})
	}
}
