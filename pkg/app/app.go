// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/funclaw/pkg/config"
	"github.com/decker502/funclaw/pkg/game"
	"github.com/decker502/funclaw/pkg/scenes"
	"github.com/decker502/funclaw/pkg/utils"
)

// AppName 设置存储使用的应用名
const AppName = "clawdemo"

// HomeRoute 首页路由
const HomeRoute = "/"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartRoute 启动后直接打开的页面（如 "/game"），为空则停留在首页
	StartRoute string
	// Seed 抓娃娃机随机种子，0 表示每局使用基于时间的随机源
	Seed uint64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	services                 *scenes.Services
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	services, err := NewServices(cfg)
	if err != nil {
		return nil, err
	}

	// 设置存储不可用时降级为仅内存设置
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: failed to prepare storage dir: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	services.Settings = settingsManager

	// 初始化音频上下文和反馈管理器
	audioContext := audio.NewContext(game.FeedbackSampleRate)
	services.Feedback = game.NewFeedbackManager(audioContext, settingsManager)
	log.Printf("[App] FeedbackManager initialized")

	if err := RegisterRoutes(services); err != nil {
		return nil, err
	}

	if cfg.StartRoute != "" && cfg.StartRoute != HomeRoute {
		if err := services.SceneManager.Navigate(cfg.StartRoute); err != nil {
			return nil, fmt.Errorf("启动页面打开失败: %w", err)
		}
	}

	return &App{
		sceneManager: services.SceneManager,
		services:     services,
		verbose:      cfg.Verbose,
	}, nil
}

// NewServices 加载配置和字体，构造不依赖设备（音频、存储）的场景依赖
func NewServices(cfg Config) (*scenes.Services, error) {
	clawConfig, err := config.LoadClawConfig(config.ClawConfigPath)
	if err != nil {
		return nil, fmt.Errorf("抓娃娃机配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载抓娃娃机配置: %s (items=%d)", config.ClawConfigPath, clawConfig.ItemCount)

	catalog, err := config.LoadCatalogConfig(config.CatalogConfigPath)
	if err != nil {
		return nil, fmt.Errorf("演示列表加载失败: %w", err)
	}
	log.Printf("[Config] 加载演示列表: %d 个演示", len(catalog.Demos))

	fonts, err := scenes.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	services := &scenes.Services{
		SceneManager: game.NewSceneManager(),
		Fonts:        fonts,
		ClawConfig:   clawConfig,
		Catalog:      catalog,
	}
	if cfg.Seed != 0 {
		services.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		log.Printf("[App] Using fixed seed %d", cfg.Seed)
	}
	return services, nil
}

// RegisterRoutes 注册所有页面路由并打开首页
// 演示列表中没有对应页面的路由会导致错误
func RegisterRoutes(svc *scenes.Services) error {
	sm := svc.SceneManager
	sm.Register(HomeRoute, func() game.Scene { return scenes.NewCatalogScene(svc) })
	sm.Register("/game", func() game.Scene { return scenes.NewClawScene(svc) })

	presentations := map[string]scenes.ModalPresentation{
		"/modal":             scenes.PresentationModal,
		"/transparent-modal": scenes.PresentationTransparent,
		"/formsheet":         scenes.PresentationFormSheet,
	}
	for route, presentation := range presentations {
		sm.Register(route, func() game.Scene { return scenes.NewModalScene(svc, presentation, route) })
	}

	if svc.Catalog != nil {
		for _, route := range svc.Catalog.Routes() {
			if !sm.HasRoute(route) {
				return fmt.Errorf("演示列表路由无对应页面: %w: %s", game.ErrUnknownRoute, route)
			}
		}
	}

	sm.SwitchTo(nil)
	if err := sm.Navigate(HomeRoute); err != nil {
		return fmt.Errorf("首页打开失败: %w", err)
	}
	return nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// letterbox 区域跟随当前主题背景
	screen.Fill(a.letterboxColor())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

func (a *App) letterboxColor() color.Color {
	if a.services != nil {
		return a.services.Theme().Background
	}
	return color.Black
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
