package config

// 布局配置常量
// 本文件定义了所有场景共用的逻辑屏幕尺寸和 UI 元素位置
// 所有坐标使用逻辑像素，Ebitengine 负责缩放到实际窗口/设备尺寸

const (
	// GameWindowWidth 是逻辑屏幕宽度（竖屏手机）
	GameWindowWidth = 390

	// GameWindowHeight 是逻辑屏幕高度
	GameWindowHeight = 844

	// HeaderHeight 是页面顶部标题栏的高度
	HeaderHeight = 100.0

	// EdgeMargin 是内容距屏幕左右边缘的距离
	EdgeMargin = 16.0

	// BackButtonSize 是圆形返回按钮的直径
	BackButtonSize = 40.0

	// GroundHeight 是游戏区域底部地面条的高度
	GroundHeight = 20.0

	// ControlsPaddingY 是操作按钮区与游戏区域之间的间距
	ControlsPaddingY = 20.0

	// ControlsHeight 是操作按钮的高度
	ControlsHeight = 64.0

	// ControlsGap 是 CATCH 与 RESET 按钮之间的间距
	ControlsGap = 16.0

	// CardPadding 是演示卡片的内边距
	CardPadding = 20.0

	// CardSpacing 是演示卡片之间的间距
	CardSpacing = 16.0

	// CardHeight 是演示卡片的高度
	CardHeight = 130.0

	// ToggleHeight 是设置开关行的高度
	ToggleHeight = 44.0
)

// GameAreaHeight 根据游戏区域比例计算游戏区域高度
func GameAreaHeight(ratio float64) float64 {
	return float64(GameWindowHeight) * ratio
}

// GameAreaTop 返回游戏区域顶部在屏幕坐标中的 Y 值
func GameAreaTop() float64 {
	return HeaderHeight
}

// ControlsTop 返回操作按钮区顶部在屏幕坐标中的 Y 值
func ControlsTop(gameAreaHeight float64) float64 {
	return GameAreaTop() + gameAreaHeight + ControlsPaddingY
}
