package claw

import "math"

// Hits 判断爪子是否命中物品
//
// 命中条件（同时满足）：
//   - 物品尚未被抓到
//   - 物品中心与爪子中心的水平距离 < itemSize/2
//   - 物品顶部与参考线的垂直距离 < itemSize
//
// 爪子的垂直位置不参与判定
func Hits(item Item, clawCenterX, clawBottomY, itemSize float64) bool {
	if item.Caught {
		return false
	}
	return math.Abs(item.X+itemSize/2-clawCenterX) < itemSize/2 &&
		math.Abs(item.Y-clawBottomY) < itemSize
}

// FindCatch 按存储顺序查找第一个被命中的物品
// 返回物品下标，没有命中返回 -1
func FindCatch(items []Item, clawCenterX, clawBottomY, itemSize float64) int {
	for i, item := range items {
		if Hits(item, clawCenterX, clawBottomY, itemSize) {
			return i
		}
	}
	return -1
}
