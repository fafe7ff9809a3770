package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/entities"
	"github.com/gonewx/cardtable/pkg/systems"
	"github.com/gonewx/cardtable/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 牌桌背景色
var tableColor = color.RGBA{R: 30, G: 100, B: 60, A: 255}

// TableScene 牌桌场景
//
// 构造时发牌一次（不再重建），之后每帧按固定顺序运行：
// 输入采集 -> 朝向更新 -> 镜头 -> 点击分发。
type TableScene struct {
	entityManager *ecs.EntityManager
	deck          *entities.Deck

	inputBuffer       *components.InputBuffer
	inputSystem       *systems.InputSystem
	orientationSystem *systems.OrientationSystem
	cameraSystem      *systems.CameraSystem
	interactionSystem *systems.InteractionSystem
	renderSystem      *systems.RenderSystem

	mode     components.DriveMode
	viewport utils.Viewport
	loadErr  error // 占位模式下缺失的图片
	frame    uint64
}

// NewTableScene 按配置创建牌桌场景
//
// 严格模式下缺图时返回错误；占位模式下场景照常创建，缺失信息可通过 LoadError 获取。
func NewTableScene(cfg *config.TableConfig, loader entities.ImageLoader, source systems.InputSource) (*TableScene, error) {
	opts, err := entities.DeckOptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	suits, err := cfg.Suits()
	if err != nil {
		return nil, err
	}
	ranks, err := cfg.Ranks()
	if err != nil {
		return nil, err
	}
	initialCamera, err := systems.CameraFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	deck, loadErr := entities.BuildDeck(em, loader, opts, suits, ranks)
	if deck == nil {
		return nil, fmt.Errorf("failed to build deck: %w", loadErr)
	}
	if loadErr != nil {
		log.Printf("[TableScene] Warning: using placeholders: %v", loadErr)
	}

	s := &TableScene{
		entityManager: em,
		deck:          deck,
		inputBuffer:   &components.InputBuffer{},
		mode:          opts.Mode,
		loadErr:       loadErr,
	}

	s.cameraSystem = systems.NewCameraSystem(em, initialCamera)
	s.orientationSystem = systems.NewOrientationSystem(em, systems.OrientationSettingsFromConfig(cfg))
	s.inputSystem = systems.NewInputSystem(source, s.inputBuffer, s.cameraSystem)
	s.inputSystem.SetGrid(deck.Grid())
	s.interactionSystem = systems.NewInteractionSystem(em, deck, s.orientationSystem, s.cameraSystem)
	s.renderSystem = systems.NewRenderSystem(em, deck, s.orientationSystem, opts.CardWidth, opts.CardHeight)

	if cfg.Camera.Watch == config.WatchDeckCenter {
		s.cameraSystem.Watch(deck.Center())
	}

	log.Printf("[TableScene] Dealt %d cards (%s mode)", deck.Len(), opts.Mode)
	return s, nil
}

// SetViewport 实现 game.ViewportAware
func (s *TableScene) SetViewport(width, height int) {
	s.viewport = utils.Viewport{Width: width, Height: height}
	s.inputSystem.SetViewport(s.viewport)
	s.interactionSystem.SetViewport(s.viewport)
}

// Update 推进一帧
func (s *TableScene) Update(deltaTime float64) {
	s.frame++

	s.inputSystem.Update()
	s.orientationSystem.Update(deltaTime)
	s.cameraSystem.Update(deltaTime)
	if n := s.interactionSystem.Dispatch(s.inputBuffer); n > 0 {
		log.Printf("[TableScene] frame %d: %d flip(s) started", s.frame, n)
	}
}

// Draw 绘制牌桌
func (s *TableScene) Draw(screen *ebiten.Image) {
	screen.Fill(tableColor)
	s.renderSystem.Draw(screen, s.cameraSystem.Camera(), s.viewport)
	ebitenutil.DebugPrintAt(screen, s.statusLine(), 8, 8)
}

// statusLine 左上角的状态文字
func (s *TableScene) statusLine() string {
	line := fmt.Sprintf("mode: %s  TPS: %.0f", s.mode, ebiten.ActualTPS())
	if s.inputBuffer.PointerInside {
		if x, y, ok := s.cameraSystem.ResolvePointer(s.viewport, s.inputBuffer.PointerX, s.inputBuffer.PointerY); ok {
			line += fmt.Sprintf("  pointer: (%.0f, %.0f)", x, y)
		}
	}
	if s.loadErr != nil {
		line += "  [placeholders]"
	}
	return line
}

// FullscreenRequested 本帧是否请求切换全屏
func (s *TableScene) FullscreenRequested() bool {
	return s.inputSystem.FullscreenRequested()
}

// Deck 返回牌阵
func (s *TableScene) Deck() *entities.Deck { return s.deck }

// EntityManager 返回场景的实体管理器
func (s *TableScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Camera 返回镜头组件
func (s *TableScene) Camera() *components.CameraComponent { return s.cameraSystem.Camera() }

// Orientation 返回朝向系统
func (s *TableScene) Orientation() *systems.OrientationSystem { return s.orientationSystem }

// LoadError 返回发牌时的图片缺失错误（占位模式），没有则为 nil
func (s *TableScene) LoadError() error { return s.loadErr }

// Frame 返回已运行的帧数
func (s *TableScene) Frame() uint64 { return s.frame }
