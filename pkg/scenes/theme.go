package scenes

import (
	"hash/fnv"
	"image/color"
)

// Theme 页面配色
type Theme struct {
	Background     color.RGBA // 页面背景
	GameBackground color.RGBA // 游戏区域背景
	Surface        color.RGBA // 卡片、返回按钮、分数框
	Border         color.RGBA
	Text           color.RGBA
	SubtleText     color.RGBA
	Ground         color.RGBA
	Rope           color.RGBA
	Accent         color.RGBA // CATCH 按钮
	Secondary      color.RGBA // RESET 按钮
	Disabled       color.RGBA
	Backdrop       color.RGBA // 半透明遮罩
}

var lightTheme = Theme{
	Background:     rgb(0xffffff),
	GameBackground: rgb(0x87ceeb),
	Surface:        rgb(0xffffff),
	Border:         rgb(0xe0e0e0),
	Text:           rgb(0x000000),
	SubtleText:     rgb(0x666666),
	Ground:         rgb(0x8b4513),
	Rope:           rgb(0x333333),
	Accent:         rgb(0xff6347),
	Secondary:      rgb(0x4682b4),
	Disabled:       rgb(0x999999),
	Backdrop:       color.RGBA{A: 0x80},
}

var darkTheme = Theme{
	Background:     rgb(0x000000),
	GameBackground: rgb(0x1a1a1a),
	Surface:        rgb(0x333333),
	Border:         rgb(0x444444),
	Text:           rgb(0xffffff),
	SubtleText:     rgb(0xaaaaaa),
	Ground:         rgb(0x2a2a2a),
	Rope:           rgb(0x999999),
	Accent:         rgb(0xff6347),
	Secondary:      rgb(0x444444),
	Disabled:       rgb(0x999999),
	Backdrop:       color.RGBA{A: 0xb0},
}

// ThemeFor 返回浅色或深色配色
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

// CardBackground 卡片背景，深色模式下比 Surface 更暗
func (t Theme) CardBackground() color.RGBA {
	if t == darkTheme {
		return rgb(0x2a2a2a)
	}
	return t.Surface
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// fruitColors 常见水果符号的颜色
var fruitColors = map[string]color.RGBA{
	"🍎": rgb(0xe53935),
	"🍊": rgb(0xfb8c00),
	"🍋": rgb(0xfdd835),
	"🍌": rgb(0xffee58),
	"🍉": rgb(0x43a047),
	"🍇": rgb(0x8e24aa),
	"🍓": rgb(0xd81b60),
	"🍒": rgb(0xb71c1c),
	"🥝": rgb(0x7cb342),
	"🍑": rgb(0xffab91),
}

// FruitColor 返回物品符号的绘制颜色
// 未知符号按哈希映射到固定色相，同一符号颜色始终相同
func FruitColor(symbol string) color.RGBA {
	if c, ok := fruitColors[symbol]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(symbol))
	sum := h.Sum32()
	return color.RGBA{R: uint8(96 + sum%128), G: uint8(96 + (sum>>8)%128), B: uint8(96 + (sum>>16)%128), A: 0xff}
}
