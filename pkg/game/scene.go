package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the app (e.g., the demo catalog, the claw game).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Exiter 是一个可选接口，场景被弹出或替换时调用 OnExit()
//
// 场景在这里释放自己独占的状态（例如抓娃娃机的 Session）
type Exiter interface {
	OnExit()
}

// Overlay 是一个可选接口，返回 true 时 SceneManager 会先绘制下层场景
//
// 用于半透明弹窗、表单页等需要露出上一页的场景
type Overlay interface {
	IsOverlay() bool
}
