package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/funclaw/pkg/components"
)

// drawText 绘制文字
// align 同时作用于水平和垂直方向，(x, y) 为对齐锚点
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, align text.Align) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawRoundedRect 绘制实心圆角矩形（两个矩形加四个圆角）
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)

	vector.DrawFilledRect(dst, fx+fr, fy, fw-2*fr, fh, clr, true)
	vector.DrawFilledRect(dst, fx, fy+fr, fw, fh-2*fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fr, fy+fh-fr, fr, clr, true)
	vector.DrawFilledCircle(dst, fx+fw-fr, fy+fh-fr, fr, clr, true)
}

// pressedTint 按下时颜色略暗
func pressedTint(c color.RGBA, state components.UIState) color.RGBA {
	if state != components.UIClicked {
		return c
	}
	return color.RGBA{R: c.R * 4 / 5, G: c.G * 4 / 5, B: c.B * 4 / 5, A: c.A}
}

// drawBackButton 绘制圆形返回按钮
func drawBackButton(dst *ebiten.Image, b *components.Button, theme Theme, fonts *Fonts) {
	r := b.Width / 2
	cx, cy := b.X+r, b.Y+r
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), pressedTint(theme.Surface, b.State), true)

	// 左箭头
	arm := float32(r * 0.35)
	fx, fy := float32(cx-r*0.1), float32(cy)
	vector.StrokeLine(dst, fx-arm/2, fy, fx+arm/2, fy-arm, 3, theme.Text, true)
	vector.StrokeLine(dst, fx-arm/2, fy, fx+arm/2, fy+arm, 3, theme.Text, true)
}

// drawFilledButton 绘制实心操作按钮，文字居中
func drawFilledButton(dst *ebiten.Image, b *components.Button, fill color.RGBA, face *text.GoTextFace) {
	drawRoundedRect(dst, b.X, b.Y, b.Width, b.Height, 15, pressedTint(fill, b.State))
	drawText(dst, b.Label, face, b.X+b.Width/2, b.Y+b.Height/2, color.White, text.AlignCenter)
}

// drawToggle 绘制设置开关行：左侧文字，右侧滑块
func drawToggle(dst *ebiten.Image, b *components.Button, theme Theme, fonts *Fonts) {
	drawText(dst, b.Label, fonts.Body, b.X, b.Y+b.Height/2, theme.Text, text.AlignStart)

	const trackW, trackH = 50.0, 28.0
	tx := b.X + b.Width - trackW
	ty := b.Y + (b.Height-trackH)/2
	track := theme.Disabled
	if b.On {
		track = theme.Secondary
		if theme == darkTheme {
			track = theme.Accent
		}
	}
	drawRoundedRect(dst, tx, ty, trackW, trackH, trackH/2, track)

	knobX := tx + trackH/2
	if b.On {
		knobX = tx + trackW - trackH/2
	}
	vector.DrawFilledCircle(dst, float32(knobX), float32(ty+trackH/2), float32(trackH/2-3), color.White, true)
}
