package scenes

import (
	"testing"

	"github.com/decker502/funclaw/pkg/claw"
	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/game"
)

// fixedRand 固定返回值的随机源
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return 0 }

// newTestServices 构造不依赖窗口和音频的场景依赖，并注册所有路由
func newTestServices(t *testing.T) *Services {
	t.Helper()

	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager error: %v", err)
	}

	svc := &Services{
		SceneManager: game.NewSceneManager(),
		Settings:     settings,
		Feedback:     claw.NopFeedback{},
		ClawConfig:   config.DefaultClawConfig(),
		Catalog: &config.CatalogConfig{Demos: []config.DemoItem{
			{Title: "Fun Claw Game", Description: "Catch items", Route: "/game"},
			{Title: "Modal", Description: "Slides up", Route: "/modal"},
			{Title: "Transparent Modal", Description: "See-through", Route: "/transparent-modal"},
		}},
		Rand: fixedRand{f: 0.5},
	}

	svc.SceneManager.Register("/", func() game.Scene { return NewCatalogScene(svc) })
	svc.SceneManager.Register("/game", func() game.Scene { return NewClawScene(svc) })
	svc.SceneManager.Register("/modal", func() game.Scene { return NewModalScene(svc, PresentationModal, "/modal") })
	svc.SceneManager.Register("/transparent-modal", func() game.Scene {
		return NewModalScene(svc, PresentationTransparent, "/transparent-modal")
	})

	if err := svc.SceneManager.Navigate("/"); err != nil {
		t.Fatalf("Navigate(/) error: %v", err)
	}
	return svc
}

// advanceScene 以 60 FPS 推进 seconds 秒
func advanceScene(tick func(float64), seconds float64) {
	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		tick(dt)
	}
}
