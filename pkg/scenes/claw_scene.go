package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/funclaw/pkg/claw"
	"github.com/decker502/funclaw/pkg/components"
	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/systems"
	"github.com/decker502/funclaw/pkg/utils"
)

const (
	catchLabel    = "CATCH!"
	catchingLabel = "CATCHING..."
	resetLabel    = "RESET"

	keyboardHint = "Space: catch   R: reset   Esc: back"
)

// clawColor 爪子颜色
var clawColor = color.RGBA{R: 0xd2, G: 0x45, B: 0x2b, A: 0xff}

// ClawScene 抓娃娃机页面
//
// 布局（自上而下）：
//   - 标题栏：返回按钮、标题、分数
//   - 游戏区域：绳子、爪子、物品、地面
//   - 操作区：CATCH（占 2 份宽度）和 RESET（占 1 份宽度）
//
// 每次进入页面都会创建新的 Controller，离开页面时关闭。
type ClawScene struct {
	services   *Services
	controller *claw.Controller
	snapshot   claw.Session

	gameAreaHeight float64

	buttonSystem *systems.ButtonSystem
	backButton   *components.Button
	catchButton  *components.Button
	resetButton  *components.Button
	buttons      []*components.Button

	exited bool
}

// NewClawScene 创建抓娃娃机页面
func NewClawScene(svc *Services) *ClawScene {
	cfg := svc.ClawConfig
	if cfg == nil {
		cfg = config.DefaultClawConfig()
	}

	opts := claw.OptionsFromConfig(cfg)
	opts.Rand = svc.Rand
	opts.Feedback = svc.Feedback

	s := &ClawScene{
		services:       svc,
		controller:     claw.NewController(opts),
		gameAreaHeight: config.GameAreaHeight(cfg.GameAreaRatio),
		buttonSystem:   systems.NewButtonSystem(),
	}
	s.snapshot = s.controller.Snapshot()
	s.controller.Subscribe(func(session claw.Session) {
		s.snapshot = session
	})

	s.layoutButtons()
	log.Printf("[ClawScene] Mounted: round=%s", s.snapshot.RoundID)
	return s
}

// layoutButtons 计算返回按钮和操作按钮的位置
func (s *ClawScene) layoutButtons() {
	backY := config.HeaderHeight - config.BackButtonSize - 16
	s.backButton = components.NewButton(config.EdgeMargin, backY, config.BackButtonSize, config.BackButtonSize, "", s.onBack)
	s.backButton.Style = components.ButtonStyleCircle

	const padX = 20.0
	top := config.ControlsTop(s.gameAreaHeight)
	unit := (float64(config.GameWindowWidth) - 2*padX - config.ControlsGap) / 3

	s.catchButton = components.NewButton(padX, top, unit*2, config.ControlsHeight, catchLabel, s.onCatch)
	s.resetButton = components.NewButton(padX+unit*2+config.ControlsGap, top, unit, config.ControlsHeight, resetLabel, s.onReset)

	s.buttons = []*components.Button{s.backButton, s.catchButton, s.resetButton}
}

// onCatch CATCH 按钮或空格键
func (s *ClawScene) onCatch() {
	if !s.controller.Catch() {
		log.Printf("[ClawScene] Catch ignored in phase %s", s.controller.Phase())
	}
	s.refreshButtons()
}

// onReset RESET 按钮或 R 键
func (s *ClawScene) onReset() {
	s.controller.Reset()
}

// onBack 返回按钮或 Esc 键
func (s *ClawScene) onBack() {
	s.services.back()
}

// refreshButtons 抓取进行中禁用 CATCH 并切换文字
func (s *ClawScene) refreshButtons() {
	busy := s.controller.Phase() != claw.PhasePatrolling
	s.catchButton.Enabled = !busy
	if busy {
		s.catchButton.Label = catchingLabel
	} else {
		s.catchButton.Label = catchLabel
	}
}

// Update 处理输入并推进动画
func (s *ClawScene) Update(deltaTime float64) {
	if s.exited {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		s.onBack()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.onCatch()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.onReset()
	}

	if !s.exited {
		s.buttonSystem.Update(s.buttons)
	}
	s.tick(deltaTime)
}

// tick 推进控制器并同步按钮状态
func (s *ClawScene) tick(deltaTime float64) {
	if s.exited {
		return
	}
	s.controller.Update(deltaTime)
	s.refreshButtons()
}

// OnExit 离开页面时丢弃本局
func (s *ClawScene) OnExit() {
	if s.exited {
		return
	}
	s.exited = true
	s.controller.Close()
}

// Snapshot 返回最近一次推送的状态
func (s *ClawScene) Snapshot() claw.Session {
	return s.snapshot
}

// Draw 绘制页面
func (s *ClawScene) Draw(screen *ebiten.Image) {
	theme := s.services.Theme()
	fonts := s.services.Fonts

	screen.Fill(theme.GameBackground)
	s.drawHeader(screen, theme, fonts)
	s.drawGameArea(screen, theme)

	catchFill := theme.Accent
	if !s.catchButton.Enabled {
		catchFill = theme.Disabled
	}
	var buttonFace *text.GoTextFace
	if fonts != nil {
		buttonFace = fonts.Button
	}
	drawFilledButton(screen, s.catchButton, catchFill, buttonFace)
	drawFilledButton(screen, s.resetButton, theme.Secondary, buttonFace)

	// 桌面端提示快捷键
	if fonts != nil && !utils.IsMobile() {
		hintY := s.catchButton.Y + s.catchButton.Height + 24
		drawText(screen, keyboardHint, fonts.Small, float64(config.GameWindowWidth)/2, hintY, theme.SubtleText, text.AlignCenter)
	}
}

// drawHeader 绘制标题栏
func (s *ClawScene) drawHeader(screen *ebiten.Image, theme Theme, fonts *Fonts) {
	drawBackButton(screen, s.backButton, theme, fonts)
	if fonts == nil {
		return
	}

	centerY := s.backButton.Y + s.backButton.Height/2
	drawText(screen, "Fun Claw", fonts.Title, float64(config.GameWindowWidth)/2, centerY, theme.Text, text.AlignCenter)

	score := fmt.Sprintf("Score: %d", s.snapshot.Score)
	w := text.Advance(score, fonts.Body) + 30
	x := float64(config.GameWindowWidth) - config.EdgeMargin - w
	drawRoundedRect(screen, x, centerY-18, w, 36, 18, theme.Surface)
	drawText(screen, score, fonts.Body, x+w/2, centerY, theme.Text, text.AlignCenter)
}

// drawGameArea 绘制绳子、爪子、物品和地面
// 游戏区域坐标加上 top 转换为屏幕坐标
func (s *ClawScene) drawGameArea(screen *ebiten.Image, theme Theme) {
	geo := s.controller.Geometry()
	top := config.GameAreaTop()
	state := s.snapshot.Claw

	// 绳子
	ropeX := float32(state.HorizontalPosition + geo.ClawSize/2)
	if state.RopeLength > 0 {
		vector.StrokeLine(screen, ropeX, float32(top), ropeX, float32(top+state.RopeLength), 2, theme.Rope, false)
	}

	drawClaw(screen, state.HorizontalPosition, top+state.VerticalPosition, geo.ClawSize)

	// 物品（已抓到的不显示）
	half := geo.ItemSize / 2
	for _, item := range s.snapshot.Items {
		if item.Caught {
			continue
		}
		cx := float32(item.X + half)
		cy := float32(top + item.Y + half)
		vector.DrawFilledCircle(screen, cx, cy, float32(half*0.8), FruitColor(item.Symbol), true)
		vector.DrawFilledCircle(screen, cx-float32(half*0.25), cy-float32(half*0.3), float32(half*0.15), color.RGBA{R: 255, G: 255, B: 255, A: 120}, true)
	}

	// 地面
	vector.DrawFilledRect(screen, 0, float32(top+s.gameAreaHeight-config.GroundHeight), float32(config.GameWindowWidth), config.GroundHeight, theme.Ground, false)
}

// drawClaw 以 (x, y) 为左上角绘制 size×size 的爪子
func drawClaw(screen *ebiten.Image, x, y, size float64) {
	cx := float32(x + size/2)
	fy := float32(y)
	s := float32(size)

	// 机身
	vector.DrawFilledRect(screen, cx-s*0.25, fy, s*0.5, s*0.3, clawColor, true)
	vector.DrawFilledCircle(screen, cx, fy+s*0.35, s*0.18, clawColor, true)

	// 两侧爪钩
	w := s * 0.08
	vector.StrokeLine(screen, cx-s*0.12, fy+s*0.4, cx-s*0.35, fy+s*0.75, w, clawColor, true)
	vector.StrokeLine(screen, cx-s*0.35, fy+s*0.75, cx-s*0.15, fy+s, w, clawColor, true)
	vector.StrokeLine(screen, cx+s*0.12, fy+s*0.4, cx+s*0.35, fy+s*0.75, w, clawColor, true)
	vector.StrokeLine(screen, cx+s*0.35, fy+s*0.75, cx+s*0.15, fy+s, w, clawColor, true)
}
