package anim

import (
	"math"
	"sync"
)

const minSmoothTime = 1e-4

// Params is an in-memory Animator. Triggers stay set until a graph
// evaluation consumes them or ResetTrigger clears them.
type Params struct {
	mu       sync.Mutex
	floats   map[string]float64
	velocity map[string]float64
	bools    map[string]bool
	triggers map[string]bool
}

type Snapshot struct {
	Floats   map[string]float64
	Bools    map[string]bool
	Triggers map[string]bool
}

func NewParams() *Params {
	return &Params{
		floats:   make(map[string]float64),
		velocity: make(map[string]float64),
		bools:    make(map[string]bool),
		triggers: make(map[string]bool),
	}
}

func (p *Params) SetBool(name string, v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bools[name] = v
}

func (p *Params) SetFloat(name string, v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.floats[name] = v
	p.velocity[name] = 0
}

func (p *Params) SetFloatDamped(name string, v, damp, dt float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if damp <= 0 || dt <= 0 {
		p.floats[name] = v
		p.velocity[name] = 0
		return
	}
	vel := p.velocity[name]
	p.floats[name] = smoothDamp(p.floats[name], v, &vel, damp, dt)
	p.velocity[name] = vel
}

func (p *Params) SetTrigger(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.triggers[name] = true
}

func (p *Params) ResetTrigger(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.triggers, name)
}

func (p *Params) Float(name string) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.floats[name]
}

func (p *Params) Bool(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bools[name]
}

func (p *Params) Trigger(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.triggers[name]
}

// ConsumeTrigger reports whether the trigger was set and clears it, the way
// a state machine transition eats a trigger on evaluation.
func (p *Params) ConsumeTrigger(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	set := p.triggers[name]
	delete(p.triggers, name)
	return set
}

func (p *Params) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := Snapshot{
		Floats:   make(map[string]float64, len(p.floats)),
		Bools:    make(map[string]bool, len(p.bools)),
		Triggers: make(map[string]bool, len(p.triggers)),
	}
	for k, v := range p.floats {
		out.Floats[k] = v
	}
	for k, v := range p.bools {
		out.Bools[k] = v
	}
	for k, v := range p.triggers {
		out.Triggers[k] = v
	}
	return out
}

// smoothDamp is the critically damped spring from Game Programming Gems 4,
// ch. 1.10, without a speed cap.
func smoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2.0 / smoothTime
	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot past the target
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = (out - target) / dt
	}
	return out
}
