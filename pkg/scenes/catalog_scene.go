package scenes

import (
	"image/color"
	"log"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/funclaw/pkg/components"
	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/systems"
	"github.com/decker502/funclaw/pkg/utils"
)

// CatalogScene 首页：演示卡片列表和设置开关
type CatalogScene struct {
	services     *Services
	buttonSystem *systems.ButtonSystem

	cards   []*components.Button
	demos   []config.DemoItem
	toggles []*components.Button
	buttons []*components.Button

	darkToggle    *components.Button
	hapticsToggle *components.Button
	soundToggle   *components.Button
}

// NewCatalogScene 创建首页
func NewCatalogScene(svc *Services) *CatalogScene {
	s := &CatalogScene{
		services:     svc,
		buttonSystem: systems.NewButtonSystem(),
	}
	if svc.Catalog != nil {
		s.demos = svc.Catalog.Demos
	}

	s.layout()
	s.syncToggles()
	log.Printf("[CatalogScene] Mounted with %d demos", len(s.demos))
	return s
}

// layout 计算卡片和开关的位置
func (s *CatalogScene) layout() {
	width := float64(config.GameWindowWidth) - 2*config.EdgeMargin
	y := config.HeaderHeight

	for _, demo := range s.demos {
		route := demo.Route
		card := components.NewButton(config.EdgeMargin, y, width, config.CardHeight, demo.Title, func() {
			s.services.navigate(route)
		})
		s.cards = append(s.cards, card)
		y += config.CardHeight + config.CardSpacing
	}

	s.darkToggle = s.newToggle("Dark mode", y, s.toggleDarkMode)
	s.hapticsToggle = s.newToggle("Haptics", y+config.ToggleHeight, s.toggleHaptics)
	s.soundToggle = s.newToggle("Sound", y+2*config.ToggleHeight, s.toggleSound)
	s.toggles = []*components.Button{s.darkToggle, s.hapticsToggle, s.soundToggle}

	s.buttons = append(append([]*components.Button{}, s.cards...), s.toggles...)
}

func (s *CatalogScene) newToggle(label string, y float64, onClick func()) *components.Button {
	b := components.NewButton(config.EdgeMargin, y, float64(config.GameWindowWidth)-2*config.EdgeMargin, config.ToggleHeight, label, onClick)
	b.Style = components.ButtonStyleToggle
	return b
}

// syncToggles 从设置同步开关状态
func (s *CatalogScene) syncToggles() {
	if s.services.Settings == nil {
		for _, t := range s.toggles {
			t.Enabled = false
		}
		return
	}
	settings := s.services.Settings.GetSettings()
	s.darkToggle.On = settings.DarkMode
	s.hapticsToggle.On = settings.HapticsEnabled
	s.soundToggle.On = settings.SoundEnabled
}

func (s *CatalogScene) toggleDarkMode() {
	s.services.Settings.SetDarkMode(!s.darkToggle.On)
	s.services.saveSettings()
	s.syncToggles()
}

func (s *CatalogScene) toggleHaptics() {
	s.services.Settings.SetHapticsEnabled(!s.hapticsToggle.On)
	s.services.saveSettings()
	s.syncToggles()
}

func (s *CatalogScene) toggleSound() {
	s.services.Settings.SetSoundEnabled(!s.soundToggle.On)
	s.services.saveSettings()
	s.syncToggles()
}

// Update 处理点击
func (s *CatalogScene) Update(deltaTime float64) {
	s.buttonSystem.Update(s.buttons)
}

// Draw 绘制卡片和开关
func (s *CatalogScene) Draw(screen *ebiten.Image) {
	theme := s.services.Theme()
	fonts := s.services.Fonts
	screen.Fill(theme.Background)
	if fonts == nil {
		return
	}

	drawText(screen, "Demos", fonts.Title, config.EdgeMargin, config.HeaderHeight/2, theme.Text, text.AlignStart)

	for i, card := range s.cards {
		s.drawCard(screen, card, s.demos[i], theme, fonts)
	}
	for _, toggle := range s.toggles {
		drawToggle(screen, toggle, theme, fonts)
	}
}

// drawCard 绘制一张演示卡片：图标、标题、说明
func (s *CatalogScene) drawCard(screen *ebiten.Image, card *components.Button, demo config.DemoItem, theme Theme, fonts *Fonts) {
	drawRoundedRect(screen, card.X, card.Y, card.Width, card.Height, 12, theme.Border)
	drawRoundedRect(screen, card.X+1, card.Y+1, card.Width-2, card.Height-2, 11, pressedTint(theme.CardBackground(), card.State))

	// 图标：取标题首字母的圆形徽章
	badge := float32(20)
	bx := float32(card.X + card.Width - config.CardPadding - 20)
	by := float32(card.Y + config.CardPadding + 22)
	vector.DrawFilledCircle(screen, bx, by, badge, badgeColor(demo), true)
	r, _ := utf8.DecodeRuneInString(demo.Title)
	drawText(screen, string(r), fonts.Heading, float64(bx), float64(by), color.White, text.AlignCenter)

	textX := card.X + config.CardPadding
	drawText(screen, demo.Title, fonts.Heading, textX, card.Y+config.CardPadding+22, theme.Text, text.AlignStart)
	lines := utils.WrapText(demo.Description, fonts.Small, card.Width-2*config.CardPadding)
	for i, line := range lines {
		if i == 2 {
			break
		}
		drawText(screen, line, fonts.Small, textX, card.Y+config.CardPadding+56+float64(i)*18, theme.SubtleText, text.AlignStart)
	}
}

// badgeColor 图标徽章颜色，优先按图标符号取色
func badgeColor(demo config.DemoItem) color.RGBA {
	if demo.Icon != "" {
		return FruitColor(demo.Icon)
	}
	return FruitColor(demo.Title)
}
