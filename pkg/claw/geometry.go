package claw

import "github.com/decker502/funclaw/pkg/config"

const (
	// EdgeMargin 物品和爪子距屏幕边缘的最小距离
	EdgeMargin = 20.0

	// SpawnBandHeight 物品生成带的高度
	SpawnBandHeight = 80.0
)

// Geometry 游戏区域几何参数
// 所有坐标以游戏区域左上角为原点
type Geometry struct {
	ScreenWidth      float64
	GameAreaHeight   float64
	BottomAreaHeight float64
	ClawSize         float64
	ItemSize         float64
}

// GeometryFromConfig 根据配置和逻辑屏幕宽度构造几何参数
func GeometryFromConfig(cfg *config.ClawConfig) Geometry {
	return Geometry{
		ScreenWidth:      float64(config.GameWindowWidth),
		GameAreaHeight:   config.GameAreaHeight(cfg.GameAreaRatio),
		BottomAreaHeight: cfg.BottomAreaHeight,
		ClawSize:         cfg.ClawSize,
		ItemSize:         cfg.ItemSize,
	}
}

// PatrolMaxX 爪子巡航的右边界
func (g Geometry) PatrolMaxX() float64 {
	return g.ScreenWidth - g.ClawSize - EdgeMargin
}

// DescendDepth 爪子下降的最大深度
func (g Geometry) DescendDepth() float64 {
	return g.GameAreaHeight - g.BottomAreaHeight - EdgeMargin
}

// ClawBottomY 碰撞判定使用的固定水平参考线（即生成带顶部）
func (g Geometry) ClawBottomY() float64 {
	return g.GameAreaHeight - g.BottomAreaHeight
}

// ClawCenterX 给定爪子水平位置，返回爪子中心 X
func (g Geometry) ClawCenterX(horizontalPosition float64) float64 {
	return horizontalPosition + g.ClawSize/2
}

// SpawnRegion 返回物品生成区域
func (g Geometry) SpawnRegion() SpawnRegion {
	return SpawnRegion{
		MinX:   EdgeMargin,
		MaxX:   g.ScreenWidth - g.ItemSize - EdgeMargin,
		Top:    g.ClawBottomY(),
		Height: SpawnBandHeight,
	}
}

// SpawnRegion 物品左上角坐标的取值范围
type SpawnRegion struct {
	MinX   float64
	MaxX   float64
	Top    float64
	Height float64
}

// Contains 判断坐标是否位于生成区域内（闭区间）
func (r SpawnRegion) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.Top && y <= r.Top+r.Height
}
