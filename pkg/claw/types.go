// Package claw 实现抓娃娃机小游戏的核心逻辑
//
// Controller 独占一局游戏（Session）的全部可变状态：
//   - 物品生成：在底部生成带随机水果符号和位置的物品
//   - 爪子运动调度：巡航（Patrolling）→ 下降（Descending）→ 上升（Ascending）→ 巡航
//   - 碰撞判定：下降到底时与物品做一次命中检测，每次最多抓到一个
//   - 分数与重置
//
// 渲染层只通过 Snapshot/Subscribe 读取状态快照，通过 Catch/Reset 触发动作，
// 不直接读写爪子的动画属性。
package claw

import "github.com/oklog/ulid/v2"

// Phase 爪子所处的阶段
type Phase int

const (
	// PhasePatrolling 水平往返巡航
	PhasePatrolling Phase = iota
	// PhaseDescending 下降中
	PhaseDescending
	// PhaseAscending 上升中
	PhaseAscending
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhasePatrolling:
		return "Patrolling"
	case PhaseDescending:
		return "Descending"
	case PhaseAscending:
		return "Ascending"
	default:
		return "Unknown"
	}
}

// Direction 巡航方向
type Direction int

const (
	// DirectionRight 向右（目标为右边缘）
	DirectionRight Direction = iota
	// DirectionLeft 向左（目标为 0）
	DirectionLeft
)

// Flip 返回相反方向
func (d Direction) Flip() Direction {
	if d == DirectionRight {
		return DirectionLeft
	}
	return DirectionRight
}

// String 返回方向名称
func (d Direction) String() string {
	if d == DirectionRight {
		return "Right"
	}
	return "Left"
}

// ItemID 物品唯一标识，在一个 Controller 的生命周期内单调递增
type ItemID uint64

// Item 可被抓取的物品
type Item struct {
	ID     ItemID
	Symbol string  // 水果符号
	X      float64 // 生成区域坐标系中的左上角 X
	Y      float64 // 生成区域坐标系中的左上角 Y
	Caught bool    // 被抓到后置为 true，不会再恢复
}

// ClawState 爪子状态
type ClawState struct {
	HorizontalPosition float64 // [0, PatrolMaxX]
	VerticalPosition   float64 // [0, DescendDepth]
	RopeLength         float64 // 始终等于 VerticalPosition
	Phase              Phase
	Direction          Direction
	PatrolSpeedMs      float64 // 当前巡航段的耗时（毫秒）
}

// Session 一局游戏的全部状态
type Session struct {
	RoundID ulid.ULID // 每次生成物品（创建或重置）时更新，用于日志关联
	Items   []Item
	Score   int
	Claw    ClawState
}

// Clone 返回深拷贝，修改副本不会影响原 Session
func (s Session) Clone() Session {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// Remaining 返回尚未被抓到的物品数量
func (s Session) Remaining() int {
	n := 0
	for _, item := range s.Items {
		if !item.Caught {
			n++
		}
	}
	return n
}
