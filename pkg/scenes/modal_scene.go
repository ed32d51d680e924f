package scenes

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/funclaw/pkg/components"
	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/systems"
	"github.com/decker502/funclaw/pkg/tween"
	"github.com/decker502/funclaw/pkg/utils"
)

// ModalPresentation 模态页面的展示方式
type ModalPresentation int

const (
	// PresentationModal 全屏不透明页面
	PresentationModal ModalPresentation = iota
	// PresentationTransparent 半透明遮罩上的卡片，下层页面可见
	PresentationTransparent
	// PresentationFormSheet 从底部升起、占屏幕下半部分的表单页
	PresentationFormSheet
)

// modalSlideDuration 模态页面滑入/滑出时长
const modalSlideDuration = 300 * time.Millisecond

// String 返回展示方式名称
func (p ModalPresentation) String() string {
	switch p {
	case PresentationModal:
		return "modal"
	case PresentationTransparent:
		return "transparent-modal"
	case PresentationFormSheet:
		return "formsheet"
	default:
		return "unknown"
	}
}

// ModalScene 模态演示页面
// 进入时从屏幕底部滑入，关闭时滑出后返回上一页
type ModalScene struct {
	services     *Services
	presentation ModalPresentation
	demo         config.DemoItem

	// offset 面板相对最终位置的向下偏移
	offset  *tween.Property
	closing bool

	buttonSystem *systems.ButtonSystem
	closeButton  *components.Button
}

// NewModalScene 创建模态页面
//
// 参数：
//   - svc: 共享依赖
//   - presentation: 展示方式
//   - route: 页面路由，用于从演示列表中查找标题和说明
func NewModalScene(svc *Services, presentation ModalPresentation, route string) *ModalScene {
	demo, ok := svc.demoFor(route)
	if !ok {
		demo = config.DemoItem{Title: presentation.String(), Route: route}
	}

	s := &ModalScene{
		services:     svc,
		presentation: presentation,
		demo:         demo,
		offset:       tween.NewProperty(float64(config.GameWindowHeight)),
		buttonSystem: systems.NewButtonSystem(),
	}
	s.offset.AnimateTo(0, modalSlideDuration, tween.CurveEaseInOut, nil)

	x, y, w, h := s.panelRect()
	s.closeButton = components.NewButton(x+config.CardPadding, y+h-config.CardPadding-config.ControlsHeight, w-2*config.CardPadding, config.ControlsHeight, "Close", s.Dismiss)

	log.Printf("[ModalScene] Presenting %s (%s)", route, presentation)
	return s
}

// IsOverlay 透明模态和表单页保留下层页面
func (s *ModalScene) IsOverlay() bool {
	return s.presentation != PresentationModal
}

// panelRect 面板最终位置（不含滑动偏移）
func (s *ModalScene) panelRect() (x, y, w, h float64) {
	screenW := float64(config.GameWindowWidth)
	screenH := float64(config.GameWindowHeight)

	switch s.presentation {
	case PresentationTransparent:
		w, h = screenW-2*config.EdgeMargin, 320
		return config.EdgeMargin, (screenH - h) / 2, w, h
	case PresentationFormSheet:
		return 0, screenH * 0.45, screenW, screenH * 0.55
	default:
		return 0, 0, screenW, screenH
	}
}

// Dismiss 滑出后返回上一页，重复调用无效
func (s *ModalScene) Dismiss() {
	if s.closing {
		return
	}
	s.closing = true
	s.closeButton.Enabled = false
	s.offset.AnimateTo(float64(config.GameWindowHeight), modalSlideDuration, tween.CurveEaseInOut, s.services.back)
}

// Closing 是否正在关闭
func (s *ModalScene) Closing() bool {
	return s.closing
}

// Offset 当前滑动偏移
func (s *ModalScene) Offset() float64 {
	return s.offset.Value()
}

// Update 处理输入并推进滑动动画
func (s *ModalScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		s.Dismiss()
	}
	s.buttonSystem.Update([]*components.Button{s.closeButton})
	s.tick(deltaTime)
}

// tick 推进动画并让关闭按钮跟随面板
func (s *ModalScene) tick(deltaTime float64) {
	s.offset.Update(deltaTime)
	_, y, _, h := s.panelRect()
	s.closeButton.Y = y + s.offset.Value() + h - config.CardPadding - config.ControlsHeight
}

// Draw 绘制遮罩和面板
func (s *ModalScene) Draw(screen *ebiten.Image) {
	theme := s.services.Theme()
	fonts := s.services.Fonts

	if s.IsOverlay() {
		// 遮罩透明度随面板位置渐变
		progress := 1 - s.offset.Value()/float64(config.GameWindowHeight)
		backdrop := theme.Backdrop
		backdrop.A = uint8(float64(backdrop.A) * progress)
		vector.DrawFilledRect(screen, 0, 0, float32(config.GameWindowWidth), float32(config.GameWindowHeight), backdrop, false)
	}

	x, y, w, h := s.panelRect()
	y += s.offset.Value()
	radius := 16.0
	if s.presentation == PresentationModal {
		radius = 0
	}
	drawRoundedRect(screen, x, y, w, h, radius, theme.Background)

	if fonts == nil {
		return
	}

	top := y + config.CardPadding
	if s.presentation == PresentationModal {
		top = y + config.HeaderHeight/2
	}
	drawText(screen, s.demo.Title, fonts.Title, x+w/2, top+20, theme.Text, text.AlignCenter)
	for i, line := range utils.WrapText(s.demo.Description, fonts.Small, w-2*config.CardPadding) {
		drawText(screen, line, fonts.Small, x+w/2, top+60+float64(i)*20, theme.SubtleText, text.AlignCenter)
	}

	drawFilledButton(screen, s.closeButton, theme.Secondary, fonts.Button)
}
