// Package app 提供牌桌应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：读取配置、打开用户设置存储、
// 创建资源管理器和牌桌场景，并实现 ebiten.Game。
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/embedded"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/gonewx/cardtable/pkg/scenes"
	"github.com/gonewx/cardtable/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// 内置配置在嵌入文件系统中的路径
const embeddedConfigPath = "data/cardtable.yaml"

// gdata 应用名（决定用户设置的存储目录）
const settingsAppName = "cardtable"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的牌桌配置文件，为空则使用内置配置
	ConfigPath string
	// Mode 覆盖配置中的驱动方式（"continuous" 或 "discrete"），为空则不覆盖
	Mode string
}

// App 是牌桌应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.TableScene
	settings     *game.SettingsManager
	tableConfig  *config.TableConfig
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化牌桌应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tableConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, err
	}

	// 用户设置存储不可用时降级为仅内存
	gdataManager, err := gdata.Open(gdata.Config{AppName: settingsAppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)

	resourceManager := game.NewResourceManager(os.DirFS(tableConfig.Assets.BasePath))

	scene, err := scenes.NewTableScene(tableConfig, resourceManager, systems.EbitenInput{})
	if err != nil {
		return nil, fmt.Errorf("牌桌初始化失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		settings:     settings,
		tableConfig:  tableConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 读取牌桌配置并应用命令行覆盖
func LoadConfig(cfg Config) (*config.TableConfig, error) {
	var (
		tableConfig *config.TableConfig
		err         error
	)
	if cfg.ConfigPath != "" {
		tableConfig, err = config.LoadTableConfig(cfg.ConfigPath)
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(embeddedConfigPath)
		if err != nil {
			return nil, fmt.Errorf("内置配置读取失败: %w", err)
		}
		tableConfig, err = config.ParseTableConfig(data, embeddedConfigPath)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Mode != "" {
		tableConfig.Orientation.DriveMode = cfg.Mode
		if err := tableConfig.Validate(); err != nil {
			return nil, fmt.Errorf("invalid -mode %q: %w", cfg.Mode, err)
		}
	}
	return tableConfig, nil
}

// Update 更新牌桌逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	if a.scene.FullscreenRequested() {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制牌桌
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 记录视口尺寸；逻辑尺寸与窗口尺寸一致，投影由镜头负责
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	if !ebiten.IsFullscreen() {
		a.settings.SetWindowSize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// WindowSize 返回启动时的窗口尺寸：用户上次的窗口尺寸优先
func (a *App) WindowSize() (int, int) {
	return a.settings.WindowSize(a.tableConfig.Window.Width, a.tableConfig.Window.Height)
}

// WindowTitle 返回窗口标题
func (a *App) WindowTitle() string {
	return a.tableConfig.Window.Title
}

// Fullscreen 返回用户上次是否使用全屏
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Shutdown 保存用户设置
func (a *App) Shutdown() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
