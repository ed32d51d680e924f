package claw

import (
	"errors"
	"time"
)

// testGeometry 测试用几何参数
// ClawBottomY = 450, DescendDepth = 430, PatrolMaxX = 320
var testGeometry = Geometry{
	ScreenWidth:      400,
	GameAreaHeight:   600,
	BottomAreaHeight: 150,
	ClawSize:         60,
	ItemSize:         50,
}

var testTiming = Timing{
	Descend:   1500 * time.Millisecond,
	Ascend:    1500 * time.Millisecond,
	PatrolMin: 2000 * time.Millisecond,
	PatrolMax: 4000 * time.Millisecond,
}

var testPalette = []string{"🍎", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🍒", "🥝", "🍑"}

// fixedRand 固定输出的随机源
// Float64 恒为 f，巡航耗时因此恒为 2000 + f*2000 毫秒
type fixedRand struct {
	f float64
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return 0 }

// cueRecorder 记录所有反馈提示
type cueRecorder struct {
	cues []Cue
	fail bool
}

func (r *cueRecorder) Fire(cue Cue) error {
	r.cues = append(r.cues, cue)
	if r.fail {
		return errors.New("haptics unsupported")
	}
	return nil
}

// newTestController 创建巡航耗时固定为 3000ms 的控制器
func newTestController(fb Feedback) *Controller {
	return NewController(Options{
		Geometry:  testGeometry,
		Timing:    testTiming,
		ItemCount: 10,
		Palette:   testPalette,
		Rand:      fixedRand{f: 0.5},
		Feedback:  fb,
	})
}

// advance 以 60 FPS 推进控制器
func advance(c *Controller, seconds float64) {
	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		c.Update(dt)
	}
}
