package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/funclaw/pkg/components"
)

// Pointer 一个指针（鼠标或触点）在当前帧的状态
type Pointer struct {
	X, Y     float64
	Pressed  bool // 正在按下
	Released bool // 本帧刚释放
}

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击
//
// 职责：
//   - 汇总鼠标和触摸输入
//   - 更新按钮状态（Normal/Hovered/Clicked/Disabled）
//   - 在指针释放时触发 OnClick
type ButtonSystem struct {
	touchIDs []ebiten.TouchID
	// touches 记录仍在屏幕上的触点最后位置，释放那一帧 TouchPosition 已不可用
	touches map[ebiten.TouchID]Pointer
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem() *ButtonSystem {
	return &ButtonSystem{
		touches: make(map[ebiten.TouchID]Pointer),
	}
}

// Update 读取本帧输入并更新按钮
//
// 返回：
//   - bool: 本帧是否有按钮被点击
func (s *ButtonSystem) Update(buttons []*components.Button) bool {
	return ApplyPointers(buttons, s.readPointers())
}

// readPointers 汇总鼠标和所有触点
func (s *ButtonSystem) readPointers() []Pointer {
	mx, my := ebiten.CursorPosition()
	pointers := []Pointer{{
		X:        float64(mx),
		Y:        float64(my),
		Pressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.touches[id] = Pointer{X: float64(x), Y: float64(y), Pressed: true}
	}

	for id, p := range s.touches {
		if inpututil.IsTouchJustReleased(id) {
			p.Pressed = false
			p.Released = true
			delete(s.touches, id)
		} else {
			x, y := ebiten.TouchPosition(id)
			p.X, p.Y = float64(x), float64(y)
			s.touches[id] = p
		}
		pointers = append(pointers, p)
	}

	return pointers
}

// ApplyPointers 根据指针状态更新按钮并触发回调
// 每个按钮每帧最多触发一次点击
func ApplyPointers(buttons []*components.Button, pointers []Pointer) bool {
	clicked := false

	for _, button := range buttons {
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		state := components.UINormal
		fire := false
		for _, p := range pointers {
			if !isPointInButton(p.X, p.Y, button) {
				continue
			}
			switch {
			case p.Released:
				fire = true
				if state == components.UINormal {
					state = components.UIHovered
				}
			case p.Pressed:
				state = components.UIClicked
			case state == components.UINormal:
				state = components.UIHovered
			}
		}
		button.State = state

		if fire && button.OnClick != nil {
			button.OnClick()
			clicked = true
		}
	}

	return clicked
}

// isPointInButton 检测点是否在按钮范围内
func isPointInButton(x, y float64, b *components.Button) bool {
	return x >= b.X &&
		x <= b.X+b.Width &&
		y >= b.Y &&
		y <= b.Y+b.Height
}
