package scenes

import (
	"log"

	"github.com/decker502/funclaw/pkg/claw"
	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/game"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Services 场景共享的依赖
// 由 app 包在启动时构造一次，所有场景工厂共用
type Services struct {
	SceneManager *game.SceneManager
	Settings     *game.SettingsManager
	Feedback     claw.Feedback
	Fonts        *Fonts

	ClawConfig *config.ClawConfig
	Catalog    *config.CatalogConfig

	// Rand 抓娃娃机随机源，为 nil 时每局使用基于时间的随机源
	Rand claw.RandSource
}

// Theme 返回当前设置对应的配色
func (s *Services) Theme() Theme {
	return ThemeFor(s.darkMode())
}

func (s *Services) darkMode() bool {
	return s.Settings != nil && s.Settings.GetSettings().DarkMode
}

// back 返回上一页
func (s *Services) back() {
	if s.SceneManager == nil {
		return
	}
	if !s.SceneManager.Back() {
		log.Printf("[Scenes] Back ignored: already at root")
	}
}

// navigate 导航到路由，失败只记录日志
func (s *Services) navigate(route string) {
	if s.SceneManager == nil {
		return
	}
	if err := s.SceneManager.Navigate(route); err != nil {
		log.Printf("[Scenes] Warning: navigation failed: %v", err)
	}
}

// saveSettings 持久化设置，失败只记录日志
func (s *Services) saveSettings() {
	if s.Settings == nil {
		return
	}
	if err := s.Settings.Save(); err != nil {
		log.Printf("[Scenes] Warning: failed to save settings: %v", err)
	}
}

// demoFor 查找路由对应的演示条目
func (s *Services) demoFor(route string) (config.DemoItem, bool) {
	if s.Catalog == nil {
		return config.DemoItem{}, false
	}
	for _, demo := range s.Catalog.Demos {
		if demo.Route == route {
			return demo, true
		}
	}
	return config.DemoItem{}, false
}
