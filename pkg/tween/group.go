package tween

import "time"

// Group 一组同步动画的属性
// 所有成员使用相同的目标值、时长和曲线，因此在同一帧完成
type Group struct {
	members []*Property
	pending int
	onDone  func()
}

// NewGroup 创建属性组
func NewGroup(members ...*Property) *Group {
	return &Group{members: members}
}

// AnimateTo 所有成员同时动画到 target，全部完成后调用一次 onDone
func (g *Group) AnimateTo(target float64, duration time.Duration, curve Curve, onDone func()) {
	g.pending = len(g.members)
	g.onDone = onDone
	for _, m := range g.members {
		m.AnimateTo(target, duration, curve, g.memberDone)
	}
	if g.pending == 0 {
		g.finish()
	}
}

// memberDone 成员完成时调用
func (g *Group) memberDone() {
	g.pending--
	if g.pending == 0 {
		g.finish()
	}
}

// finish 触发组完成回调
func (g *Group) finish() {
	done := g.onDone
	g.onDone = nil
	if done != nil {
		done()
	}
}

// Update 推进所有成员
func (g *Group) Update(dt float64) {
	for _, m := range g.members {
		m.Update(dt)
	}
}

// Halt 停止所有成员，不触发完成回调
func (g *Group) Halt() {
	for _, m := range g.members {
		m.HaltAndRead()
	}
	g.pending = 0
	g.onDone = nil
}

// Animating 返回是否有成员仍在动画中
func (g *Group) Animating() bool {
	for _, m := range g.members {
		if m.Animating() {
			return true
		}
	}
	return false
}
