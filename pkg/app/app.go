// Package app 提供房间应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/lightroom/pkg/config"
	"github.com/decker502/lightroom/pkg/game"
	"github.com/decker502/lightroom/pkg/reporting"
	"github.com/decker502/lightroom/pkg/scenes"
	"github.com/decker502/lightroom/pkg/sound"
)

// StorageAppName 用户设置的存储目录名
const StorageAppName = "lightroom"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// RoomConfigPath 覆盖默认房间配置的 YAML 文件，为空则使用默认配置
	RoomConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	roomConfig               *config.RoomConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	roomConfig, err := config.LoadRoomConfig(cfg.RoomConfigPath)
	if err != nil {
		return nil, fmt.Errorf("房间配置加载失败: %w", err)
	}

	// 用户设置：存储不可用时降级为内存模式
	settings := game.NewSettingsManager(game.OpenSettingsStorage(StorageAppName))
	if err := settings.Load(); err != nil {
		log.Printf("[App] Failed to load settings, using defaults: %v", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(int(sound.SampleRate))

	// 创建资源管理器并注册合成的成就音效
	resourceManager := game.NewResourceManager(audioContext)
	chime, err := sound.AchievementChimePCM()
	if err != nil {
		return nil, fmt.Errorf("成就音效合成失败: %w", err)
	}
	if err := resourceManager.RegisterSound(roomConfig.Card.Sound, chime); err != nil {
		return nil, fmt.Errorf("成就音效注册失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settings)
	log.Printf("[App] AudioManager initialized")

	roomScene, err := scenes.NewRoomScene(resourceManager, audioManager, settings, roomConfig)
	if err != nil {
		return nil, fmt.Errorf("房间场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(roomScene)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		roomConfig:   roomConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
//
// Ebitengine 在独立的 goroutine 中调用 Update 和 Draw，main 中的 defer 覆盖不到这里
func (a *App) Update() error {
	defer reporting.Recover()

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.roomConfig.Window.Width, a.roomConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.roomConfig.Window.Width, a.roomConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		wasFullscreen := ebiten.IsFullscreen()
		if wasFullscreen {
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
		a.settings.SetFullscreen(!wasFullscreen)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	defer reporting.Recover()

	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.roomConfig.Window.Width, a.roomConfig.Window.Height
}

// GetSceneManager 返回场景管理器
// 用于在关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// RoomConfig 返回房间配置（窗口标题和尺寸）
func (a *App) RoomConfig() *config.RoomConfig {
	return a.roomConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
