package tween

import "time"

// Property 可动画的数值属性（例如爪子的 X 坐标）
// 同一时间最多只有一个进行中的动画，开始新动画会替换旧动画（旧动画不触发回调）
type Property struct {
	value  float64
	active *Tween
}

// NewProperty 创建初始值为 v 的属性
func NewProperty(v float64) *Property {
	return &Property{value: v}
}

// AnimateTo 从当前值动画到 target
// onDone 在自然结束时调用，可以为 nil；回调内可以安全地开始下一个动画
func (p *Property) AnimateTo(target float64, duration time.Duration, curve Curve, onDone func()) {
	tw := New(p.value, target, duration, curve)
	tw.OnComplete(func() {
		p.value = tw.Value()
		// 先清除 active，回调中可能会开始新的动画
		if p.active == tw {
			p.active = nil
		}
		if onDone != nil {
			onDone()
		}
	})
	p.active = tw
}

// Update 推进当前动画
func (p *Property) Update(dt float64) {
	if p.active == nil {
		return
	}
	tw := p.active
	v := tw.Update(dt)
	// 已完成的动画在回调中写入终值，回调可能已经开始了新动画
	if p.active == tw {
		p.value = v
	}
}

// HaltAndRead 停止进行中的动画并返回停止时刻的值
// 没有动画时直接返回当前值
func (p *Property) HaltAndRead() float64 {
	if p.active != nil {
		p.value = p.active.Halt()
		p.active = nil
	}
	return p.value
}

// Set 停止动画并直接设置值
func (p *Property) Set(v float64) {
	p.HaltAndRead()
	p.value = v
}

// Value 返回当前值
func (p *Property) Value() float64 {
	return p.value
}

// Animating 返回是否有进行中的动画
func (p *Property) Animating() bool {
	return p.active != nil
}
