package components

// UIState UI 元素的交互状态
type UIState int

const (
	// UINormal 默认状态
	UINormal UIState = iota
	// UIHovered 鼠标悬停
	UIHovered
	// UIClicked 按下（尚未释放）
	UIClicked
	// UIDisabled 禁用，不响应点击
	UIDisabled
)

// String 返回状态名称
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ButtonStyle 按钮外观
type ButtonStyle int

const (
	// ButtonStyleFilled 实心圆角矩形（操作按钮、卡片）
	ButtonStyleFilled ButtonStyle = iota
	// ButtonStyleCircle 圆形（返回按钮）
	ButtonStyleCircle
	// ButtonStyleToggle 开关行
	ButtonStyleToggle
)

// Button 按钮组件
// 纯数据：位置、尺寸、文字、状态、回调，交互逻辑由 systems.ButtonSystem 处理
type Button struct {
	// X, Y 按钮左上角（屏幕坐标）
	X float64
	Y float64
	// Width, Height 按钮尺寸
	Width  float64
	Height float64

	// Label 按钮文字
	Label string
	// Style 外观类型
	Style ButtonStyle
	// On 开关状态（仅 ButtonStyleToggle 使用）
	On bool

	// State 当前交互状态
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调（释放时触发）
	OnClick func()
}

// NewButton 创建一个启用状态的按钮
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Label:   label,
		Enabled: true,
		OnClick: onClick,
	}
}
