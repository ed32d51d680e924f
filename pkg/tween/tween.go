// Package tween 提供基于时间的数值属性插值（动画驱动）
//
// 场景和玩法逻辑通过本包驱动位置、长度等连续属性：
//   - Tween: 单次从起始值到目标值的插值，自然结束时触发一次完成回调
//   - Property: 持有当前值的数值属性，可以随时开始新的动画或中途停止并读取当前值
//   - Group: 多个属性以相同时长、相同曲线同步动画，全部完成后触发一次回调
//
// 所有回调都在 Update 调用中同步执行，调用方负责在单一线程（游戏循环）中驱动。
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve 插值曲线类型
type Curve int

const (
	// CurveLinear 线性运动
	CurveLinear Curve = iota
	// CurveEaseInOut 二次缓动（先加速后减速）
	CurveEaseInOut
)

// String 返回曲线名称（用于日志）
func (c Curve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseInOut:
		return "easeInOut"
	default:
		return "unknown"
	}
}

// easing 返回 gween 的缓动函数
func (c Curve) easing() ease.TweenFunc {
	if c == CurveEaseInOut {
		return ease.InOutQuad
	}
	return ease.Linear
}

// Tween 一次从 from 到 to 的插值
type Tween struct {
	tw         *gween.Tween
	from       float64
	to         float64
	value      float64
	running    bool
	onComplete func()
}

// New 创建并立即开始一个插值
// duration <= 0 时在下一次 Update 立即结束
func New(from, to float64, duration time.Duration, curve Curve) *Tween {
	t := &Tween{
		from:    from,
		to:      to,
		value:   from,
		running: true,
	}
	if duration > 0 {
		t.tw = gween.New(float32(from), float32(to), float32(duration.Seconds()), curve.easing())
	}
	return t
}

// OnComplete 设置自然结束时的回调，返回自身便于链式调用
// Halt 不会触发该回调
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Update 推进 dt 秒并返回当前值
// 自然结束的那一帧触发完成回调（只触发一次）
func (t *Tween) Update(dt float64) float64 {
	if !t.running {
		return t.value
	}

	finished := true
	if t.tw != nil {
		var current float32
		current, finished = t.tw.Update(float32(dt))
		t.value = float64(current)
	}

	if finished {
		// 终点使用精确的 float64 目标值，避免 float32 误差
		t.value = t.to
		t.running = false
		if t.onComplete != nil {
			t.onComplete()
		}
	}

	return t.value
}

// Halt 立即停止插值并返回停止时刻的插值结果，不触发完成回调
func (t *Tween) Halt() float64 {
	t.running = false
	return t.value
}

// Value 返回当前插值结果
func (t *Tween) Value() float64 {
	return t.value
}

// Running 返回插值是否仍在进行
func (t *Tween) Running() bool {
	return t.running
}

// Target 返回目标值
func (t *Tween) Target() float64 {
	return t.to
}
