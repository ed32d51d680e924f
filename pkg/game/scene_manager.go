package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownRoute 导航到未注册的路由
var ErrUnknownRoute = errors.New("unknown route")

// SceneFactory 场景工厂函数类型
// 每次导航都会调用工厂创建新的场景实例（相当于重新挂载页面）
type SceneFactory func() Scene

// SceneManager 管理页面栈，同时充当导航器
// 只有栈顶场景会收到 Update；Draw 时如果栈顶是 Overlay，会先绘制下层场景
type SceneManager struct {
	stack      []Scene
	routes     map[string]SceneFactory
	routeOf    map[Scene]string
	onNavigate func(route string)
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		stack:   make([]Scene, 0, 4),
		routes:  make(map[string]SceneFactory),
		routeOf: make(map[Scene]string),
	}
}

// Register 注册路由
func (sm *SceneManager) Register(route string, factory SceneFactory) {
	sm.routes[route] = factory
}

// HasRoute 检查路由是否已注册
func (sm *SceneManager) HasRoute(route string) bool {
	_, ok := sm.routes[route]
	return ok
}

// SetNavigateHook 设置导航成功后的回调（用于日志、埋点或反馈）
func (sm *SceneManager) SetNavigateHook(fn func(route string)) {
	sm.onNavigate = fn
}

// Navigate 创建路由对应的新场景并压入栈顶
//
// 返回：
//   - error: 路由未注册时返回 ErrUnknownRoute
func (sm *SceneManager) Navigate(route string) error {
	factory, ok := sm.routes[route]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}

	scene := factory()
	if scene == nil {
		return fmt.Errorf("scene factory for %s returned nil", route)
	}

	sm.stack = append(sm.stack, scene)
	sm.routeOf[scene] = route
	log.Printf("[SceneManager] Navigate: %s (depth=%d)", route, len(sm.stack))

	if sm.onNavigate != nil {
		sm.onNavigate(route)
	}
	return nil
}

// Back 弹出栈顶场景
// 栈中只剩一个场景时不做任何事并返回 false
func (sm *SceneManager) Back() bool {
	if len(sm.stack) <= 1 {
		return false
	}

	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	sm.exit(top)

	log.Printf("[SceneManager] Back to: %s (depth=%d)", sm.CurrentRoute(), len(sm.stack))
	return true
}

// SwitchTo 清空页面栈并把 scene 设为唯一场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	for i := len(sm.stack) - 1; i >= 0; i-- {
		sm.exit(sm.stack[i])
	}
	sm.stack = sm.stack[:0]
	if scene != nil {
		sm.stack = append(sm.stack, scene)
	}
}

// exit 通知场景退出并移除路由记录
func (sm *SceneManager) exit(scene Scene) {
	if exiter, ok := scene.(Exiter); ok {
		exiter.OnExit()
	}
	delete(sm.routeOf, scene)
}

// GetCurrentScene 返回当前活动的场景，没有场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// CurrentRoute 返回栈顶场景的路由，非路由创建的场景返回空字符串
func (sm *SceneManager) CurrentRoute() string {
	current := sm.GetCurrentScene()
	if current == nil {
		return ""
	}
	return sm.routeOf[current]
}

// Depth 返回页面栈深度
func (sm *SceneManager) Depth() int {
	return len(sm.stack)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if current := sm.GetCurrentScene(); current != nil {
		current.Update(deltaTime)
	}
}

// Draw renders the active scene, preceded by the scenes below it while they are overlays.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if len(sm.stack) == 0 {
		return
	}

	// 从栈顶向下找到第一个不透明的场景
	start := len(sm.stack) - 1
	for start > 0 {
		overlay, ok := sm.stack[start].(Overlay)
		if !ok || !overlay.IsOverlay() {
			break
		}
		start--
	}

	for _, scene := range sm.stack[start:] {
		scene.Draw(screen)
	}
}
