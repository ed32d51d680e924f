package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/funclaw/pkg/embedded"
)

// ClawConfigPath 是抓娃娃机配置文件在嵌入文件系统中的路径
const ClawConfigPath = "data/claw.yaml"

// ClawConfig 抓娃娃机玩法配置
type ClawConfig struct {
	ItemCount        int      `yaml:"itemCount"`        // 每局物品数量
	Palette          []string `yaml:"palette"`          // 物品符号调色板
	ClawSize         float64  `yaml:"clawSize"`         // 爪子尺寸（像素）
	ItemSize         float64  `yaml:"itemSize"`         // 物品尺寸（像素）
	GameAreaRatio    float64  `yaml:"gameAreaRatio"`    // 游戏区域高度 / 屏幕高度
	BottomAreaHeight float64  `yaml:"bottomAreaHeight"` // 底部物品区域高度（像素）
	DescendMs        int      `yaml:"descendMs"`        // 下降耗时（毫秒）
	AscendMs         int      `yaml:"ascendMs"`         // 上升耗时（毫秒）
	PatrolMinMs      int      `yaml:"patrolMinMs"`      // 巡航单程最短耗时（毫秒）
	PatrolMaxMs      int      `yaml:"patrolMaxMs"`      // 巡航单程最长耗时（毫秒）
}

// DefaultClawConfig 返回默认配置，与 data/claw.yaml 保持一致
func DefaultClawConfig() *ClawConfig {
	return &ClawConfig{
		ItemCount:        10,
		Palette:          []string{"🍎", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🍒", "🥝", "🍑"},
		ClawSize:         60,
		ItemSize:         50,
		GameAreaRatio:    0.7,
		BottomAreaHeight: 150,
		DescendMs:        1500,
		AscendMs:         1500,
		PatrolMinMs:      2000,
		PatrolMaxMs:      4000,
	}
}

// LoadClawConfig 从嵌入文件系统加载抓娃娃机配置
func LoadClawConfig(path string) (*ClawConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read claw config file: %w", err)
	}
	return ParseClawConfig(data)
}

// ParseClawConfig 解析 YAML 数据
// 未出现的字段沿用默认值
func ParseClawConfig(data []byte) (*ClawConfig, error) {
	cfg := DefaultClawConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse claw config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claw config: %w", err)
	}

	return cfg, nil
}

// Validate 校验配置的有效性
func (c *ClawConfig) Validate() error {
	if c.ItemCount <= 0 {
		return fmt.Errorf("itemCount must be positive, got %d", c.ItemCount)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette cannot be empty")
	}
	for i, symbol := range c.Palette {
		if symbol == "" {
			return fmt.Errorf("palette[%d] cannot be empty", i)
		}
	}
	if c.ClawSize <= 0 || c.ItemSize <= 0 {
		return fmt.Errorf("clawSize and itemSize must be positive, got %.1f/%.1f", c.ClawSize, c.ItemSize)
	}
	if c.GameAreaRatio <= 0 || c.GameAreaRatio > 1 {
		return fmt.Errorf("gameAreaRatio must be in (0, 1], got %.2f", c.GameAreaRatio)
	}

	gameAreaHeight := GameAreaHeight(c.GameAreaRatio)
	if c.BottomAreaHeight <= 0 || c.BottomAreaHeight+20 >= gameAreaHeight {
		return fmt.Errorf("bottomAreaHeight %.1f does not fit game area height %.1f", c.BottomAreaHeight, gameAreaHeight)
	}
	if float64(GameWindowWidth)-c.ItemSize-40 < 0 {
		return fmt.Errorf("itemSize %.1f too large for screen width %d", c.ItemSize, GameWindowWidth)
	}
	if float64(GameWindowWidth)-c.ClawSize-20 < 0 {
		return fmt.Errorf("clawSize %.1f too large for screen width %d", c.ClawSize, GameWindowWidth)
	}

	if c.DescendMs < 0 || c.AscendMs < 0 {
		return fmt.Errorf("descendMs and ascendMs cannot be negative")
	}
	if c.PatrolMinMs <= 0 || c.PatrolMaxMs < c.PatrolMinMs {
		return fmt.Errorf("patrol range [%d, %d] is invalid", c.PatrolMinMs, c.PatrolMaxMs)
	}

	return nil
}
