package claw

// RandSource 可注入的随机源
// *math/rand/v2.Rand 满足该接口
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// IDSource 单调递增的物品 ID 生成器
// ID 从 1 开始，0 保留为无效 ID
type IDSource struct {
	next uint64
}

// NewIDSource 创建 ID 生成器
func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

// Next 返回下一个 ID
func (s *IDSource) Next() ItemID {
	id := ItemID(s.next)
	s.next++
	return id
}

// GenerateItems 生成 count 个物品
//
// 参数：
//   - count: 物品数量
//   - palette: 符号调色板，每个物品有放回地均匀抽取
//   - region: 生成区域，X/Y 在区域内均匀分布
//   - rng: 随机源
//   - ids: ID 生成器，保证与之前生成的物品不重复
//
// count <= 0 或 palette 为空时返回空切片
func GenerateItems(count int, palette []string, region SpawnRegion, rng RandSource, ids *IDSource) []Item {
	if count <= 0 || len(palette) == 0 {
		return []Item{}
	}

	items := make([]Item, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, Item{
			ID:     ids.Next(),
			Symbol: palette[rng.IntN(len(palette))],
			X:      region.MinX + rng.Float64()*(region.MaxX-region.MinX),
			Y:      region.Top + rng.Float64()*region.Height,
		})
	}
	return items
}
