package anim

import (
	"math"
	"testing"
)

// TestSetFloatDampedApproachesTarget 测试阻尼浮点参数逐帧逼近目标
func TestSetFloatDampedApproachesTarget(t *testing.T) {
	p := NewParams()
	const dt = 1.0 / 60.0

	p.SetFloatDamped(ParamBlend, 1, 0.3, dt)
	first := p.Float(ParamBlend)
	if first <= 0 || first >= 1 {
		t.Fatalf("一帧后 Blend = %.6f, 期望位于 (0, 1)", first)
	}

	prev := first
	for i := 0; i < 300; i++ {
		p.SetFloatDamped(ParamBlend, 1, 0.3, dt)
		cur := p.Float(ParamBlend)
		if cur < prev {
			t.Fatalf("第 %d 帧 Blend 回退: %.6f < %.6f", i, cur, prev)
		}
		if cur > 1 {
			t.Fatalf("第 %d 帧 Blend 越过目标: %.6f", i, cur)
		}
		prev = cur
	}
	if math.Abs(prev-1) > 1e-3 {
		t.Fatalf("5 秒后 Blend = %.6f, 期望接近 1", prev)
	}
}

// TestSetFloatDampedShorterTimeIsFaster 阻尼时间越短收敛越快
func TestSetFloatDampedShorterTimeIsFaster(t *testing.T) {
	fast := NewParams()
	slow := NewParams()
	const dt = 1.0 / 60.0
	for i := 0; i < 10; i++ {
		fast.SetFloatDamped(ParamBlend, 1, 0.15, dt)
		slow.SetFloatDamped(ParamBlend, 1, 0.3, dt)
	}
	if fast.Float(ParamBlend) <= slow.Float(ParamBlend) {
		t.Fatalf("fast=%.6f slow=%.6f, 期望 fast > slow", fast.Float(ParamBlend), slow.Float(ParamBlend))
	}
}

func TestSetFloatDampedZeroDampSetsImmediately(t *testing.T) {
	p := NewParams()
	p.SetFloatDamped(ParamBlend, 0.75, 0, 1.0/60.0)
	if got := p.Float(ParamBlend); got != 0.75 {
		t.Fatalf("Blend = %.6f, want 0.75", got)
	}
}

func TestSetFloat(t *testing.T) {
	p := NewParams()
	p.SetFloat("Speed", 2.5)
	if got := p.Float("Speed"); got != 2.5 {
		t.Fatalf("Speed = %.6f, want 2.5", got)
	}
}

// TestTriggerLifecycle 测试触发器的设置、重置与消费
func TestTriggerLifecycle(t *testing.T) {
	p := NewParams()

	p.SetTrigger(ParamJump)
	if !p.Trigger(ParamJump) {
		t.Fatal("SetTrigger 后 Jump 应为 true")
	}

	p.ResetTrigger(ParamJump)
	if p.Trigger(ParamJump) {
		t.Fatal("ResetTrigger 后 Jump 应为 false")
	}

	p.SetTrigger(ParamJump)
	if !p.ConsumeTrigger(ParamJump) {
		t.Fatal("ConsumeTrigger 应返回 true")
	}
	if p.ConsumeTrigger(ParamJump) {
		t.Fatal("触发器只能被消费一次")
	}
}

func TestBoolAndSnapshot(t *testing.T) {
	p := NewParams()
	p.SetBool(ParamGrounded, true)
	p.SetBool(ParamSprint, false)
	p.SetFloat(ParamBlend, 0.5)
	p.SetTrigger(ParamJump)

	snap := p.Snapshot()
	if !snap.Bools[ParamGrounded] || snap.Bools[ParamSprint] {
		t.Fatalf("bools = %v", snap.Bools)
	}
	if snap.Floats[ParamBlend] != 0.5 {
		t.Fatalf("floats = %v", snap.Floats)
	}
	if !snap.Triggers[ParamJump] {
		t.Fatalf("triggers = %v", snap.Triggers)
	}

	// 快照与内部状态互不影响
	snap.Bools[ParamGrounded] = false
	if !p.Bool(ParamGrounded) {
		t.Fatal("修改快照不应影响 Params")
	}
}
