package claw

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/tween"
)

// Timing 爪子运动的时间参数
type Timing struct {
	Descend   time.Duration
	Ascend    time.Duration
	PatrolMin time.Duration
	PatrolMax time.Duration
}

// Options Controller 构造参数
type Options struct {
	Geometry  Geometry
	Timing    Timing
	ItemCount int
	Palette   []string

	// Rand 随机源，为 nil 时使用基于当前时间的随机源
	Rand RandSource
	// Feedback 反馈协作者，为 nil 时不产生反馈
	Feedback Feedback
}

// OptionsFromConfig 根据配置文件构造 Options
func OptionsFromConfig(cfg *config.ClawConfig) Options {
	return Options{
		Geometry: GeometryFromConfig(cfg),
		Timing: Timing{
			Descend:   time.Duration(cfg.DescendMs) * time.Millisecond,
			Ascend:    time.Duration(cfg.AscendMs) * time.Millisecond,
			PatrolMin: time.Duration(cfg.PatrolMinMs) * time.Millisecond,
			PatrolMax: time.Duration(cfg.PatrolMaxMs) * time.Millisecond,
		},
		ItemCount: cfg.ItemCount,
		Palette:   cfg.Palette,
	}
}

// Controller 抓娃娃机控制器
//
// 所有状态变更都发生在 Catch/Reset 调用中，或 Update 内触发的动画完成回调中，
// 调用方必须在同一个线程（游戏循环）中调用这些方法。
type Controller struct {
	geometry  Geometry
	timing    Timing
	itemCount int
	palette   []string
	rng       RandSource
	ids       *IDSource
	feedback  Feedback

	session Session

	// 动画属性：水平位置、垂直位置、绳长
	clawX    *tween.Property
	clawY    *tween.Property
	rope     *tween.Property
	vertical *tween.Group

	listeners []func(Session)
}

// NewController 创建控制器并开始第一段巡航
func NewController(opts Options) *Controller {
	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	feedback := opts.Feedback
	if feedback == nil {
		feedback = NopFeedback{}
	}

	c := &Controller{
		geometry:  opts.Geometry,
		timing:    opts.Timing,
		itemCount: opts.ItemCount,
		palette:   opts.Palette,
		rng:       rng,
		ids:       NewIDSource(),
		feedback:  feedback,
		clawX:     tween.NewProperty(0),
		clawY:     tween.NewProperty(0),
		rope:      tween.NewProperty(0),
	}
	c.vertical = tween.NewGroup(c.clawY, c.rope)

	c.session = Session{
		RoundID: ulid.Make(),
		Items:   c.generate(),
		Claw: ClawState{
			Phase:     PhasePatrolling,
			Direction: DirectionRight,
		},
	}
	log.Printf("[ClawController] Session created: round=%s items=%d", c.session.RoundID, len(c.session.Items))

	c.startPatrolLeg()
	return c
}

// generate 生成新的物品场
func (c *Controller) generate() []Item {
	return GenerateItems(c.itemCount, c.palette, c.geometry.SpawnRegion(), c.rng, c.ids)
}

// samplePatrolSpeed 在 [PatrolMin, PatrolMax] 内均匀采样巡航耗时（毫秒）
func (c *Controller) samplePatrolSpeed() float64 {
	minMs := float64(c.timing.PatrolMin.Milliseconds())
	maxMs := float64(c.timing.PatrolMax.Milliseconds())
	return minMs + c.rng.Float64()*(maxMs-minMs)
}

// startPatrolLeg 以当前方向开始新一段巡航
// 每段都重新采样速度，耗时与剩余距离无关
func (c *Controller) startPatrolLeg() {
	speed := c.samplePatrolSpeed()
	c.session.Claw.PatrolSpeedMs = speed

	target := 0.0
	if c.session.Claw.Direction == DirectionRight {
		target = c.geometry.PatrolMaxX()
	}

	duration := time.Duration(speed * float64(time.Millisecond))
	c.clawX.AnimateTo(target, duration, tween.CurveEaseInOut, c.onPatrolLegDone)
}

// onPatrolLegDone 巡航段自然结束：翻转方向并开始下一段
func (c *Controller) onPatrolLegDone() {
	if c.session.Claw.Phase != PhasePatrolling {
		return
	}
	c.session.Claw.Direction = c.session.Claw.Direction.Flip()
	c.startPatrolLeg()
}

// Catch 开始一次抓取
//
// 只在巡航阶段有效：停止水平动画并冻结当前位置，然后开始下降。
// 下降或上升过程中调用不做任何事。
//
// 返回：
//   - bool: 是否开始了新的抓取
func (c *Controller) Catch() bool {
	if c.session.Claw.Phase != PhasePatrolling {
		return false
	}

	c.session.Claw.Phase = PhaseDescending
	c.session.Claw.HorizontalPosition = c.clawX.HaltAndRead()
	c.fire(CueMedium)

	log.Printf("[ClawController] Catch: frozen x=%.1f direction=%s", c.session.Claw.HorizontalPosition, c.session.Claw.Direction)

	c.vertical.AnimateTo(c.geometry.DescendDepth(), c.timing.Descend, tween.CurveLinear, c.onDescended)
	c.notify()
	return true
}

// onDescended 下降完成：做碰撞判定，然后开始上升
func (c *Controller) onDescended() {
	c.syncClaw()

	centerX := c.geometry.ClawCenterX(c.session.Claw.HorizontalPosition)
	idx := FindCatch(c.session.Items, centerX, c.geometry.ClawBottomY(), c.geometry.ItemSize)
	if idx >= 0 {
		c.session.Items[idx].Caught = true
		c.session.Score++
		log.Printf("[ClawController] Caught item %d (%s), score=%d", c.session.Items[idx].ID, c.session.Items[idx].Symbol, c.session.Score)
		c.fire(CueSuccess)
	} else {
		log.Printf("[ClawController] Missed at center x=%.1f", centerX)
		c.fire(CueWarning)
	}

	c.session.Claw.Phase = PhaseAscending
	c.vertical.AnimateTo(0, c.timing.Ascend, tween.CurveLinear, c.onAscended)
}

// onAscended 上升完成：以原方向恢复巡航
func (c *Controller) onAscended() {
	c.syncClaw()
	c.session.Claw.Phase = PhasePatrolling
	c.startPatrolLeg()
}

// Reset 重新生成物品并清零分数
// 不影响爪子当前的运动，进行中的抓取会在新的物品场上结算
func (c *Controller) Reset() {
	c.session.Items = c.generate()
	c.session.Score = 0
	c.session.RoundID = ulid.Make()
	c.fire(CueLight)

	log.Printf("[ClawController] Reset: round=%s phase=%s", c.session.RoundID, c.session.Claw.Phase)
	c.notify()
}

// Update 推进所有动画 dt 秒
// 动画完成回调在此同步执行
func (c *Controller) Update(dt float64) {
	c.clawX.Update(dt)
	c.vertical.Update(dt)
	c.syncClaw()
	c.notify()
}

// syncClaw 把动画属性的当前值写回 Session
func (c *Controller) syncClaw() {
	c.session.Claw.HorizontalPosition = c.clawX.Value()
	c.session.Claw.VerticalPosition = c.clawY.Value()
	c.session.Claw.RopeLength = c.rope.Value()
}

// fire 发出反馈，失败只记录日志
func (c *Controller) fire(cue Cue) {
	if err := c.feedback.Fire(cue); err != nil {
		log.Printf("[ClawController] Warning: feedback cue %s failed: %v", cue, err)
	}
}

// Subscribe 注册快照监听器，每次 Update 和每个动作之后调用
func (c *Controller) Subscribe(fn func(Session)) {
	c.listeners = append(c.listeners, fn)
}

// notify 向所有监听器推送快照
func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	snapshot := c.session.Clone()
	for _, fn := range c.listeners {
		fn(snapshot)
	}
}

// Snapshot 返回当前状态的只读副本
func (c *Controller) Snapshot() Session {
	return c.session.Clone()
}

// Phase 返回当前阶段
func (c *Controller) Phase() Phase {
	return c.session.Claw.Phase
}

// Geometry 返回几何参数
func (c *Controller) Geometry() Geometry {
	return c.geometry
}

// Close 停止所有动画并移除监听器（场景卸载时调用）
func (c *Controller) Close() {
	c.clawX.HaltAndRead()
	c.vertical.Halt()
	c.listeners = nil
	log.Printf("[ClawController] Session discarded: round=%s score=%d", c.session.RoundID, c.session.Score)
}
