package config

import (
	"math"
	"testing"
)

// TestGameAreaHeight 测试游戏区域高度计算
func TestGameAreaHeight(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"默认 70%", 0.7, 590.8},
		{"全屏", 1.0, GameWindowHeight},
		{"一半", 0.5, 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GameAreaHeight(tt.ratio); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("GameAreaHeight(%.2f) = %.2f, want %.2f", tt.ratio, got, tt.want)
			}
		})
	}
}

// TestControlsFitOnScreen 测试默认布局下操作按钮完整显示在屏幕内
func TestControlsFitOnScreen(t *testing.T) {
	gameArea := GameAreaHeight(DefaultClawConfig().GameAreaRatio)

	top := ControlsTop(gameArea)
	if top <= GameAreaTop()+gameArea {
		t.Errorf("controls top %.1f overlaps game area", top)
	}
	if bottom := top + ControlsHeight; bottom > GameWindowHeight {
		t.Errorf("controls bottom %.1f exceeds screen height %d", bottom, GameWindowHeight)
	}
}

// TestCatalogFitsOnScreen 测试四张卡片加三行开关不超出屏幕
func TestCatalogFitsOnScreen(t *testing.T) {
	const cards, toggles = 4, 3
	bottom := HeaderHeight + cards*(CardHeight+CardSpacing) + toggles*ToggleHeight
	if bottom > GameWindowHeight {
		t.Errorf("catalog bottom %.1f exceeds screen height %d", bottom, GameWindowHeight)
	}
}
