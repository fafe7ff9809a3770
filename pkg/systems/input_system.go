package systems

import (
	"log"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/utils"
)

// InputSource 提供每帧的原始输入
type InputSource interface {
	State() utils.InputState
}

// EbitenInput 从 ebiten 读取鼠标、触摸与键盘状态
type EbitenInput struct{}

// State 实现 InputSource
func (EbitenInput) State() utils.InputState {
	return utils.GetInputState()
}

// InputSystem 采集输入并写入 InputBuffer
//
// 只负责采集：点击的解析与分发由 InteractionSystem 在同一帧完成。
type InputSystem struct {
	source   InputSource
	buffer   *components.InputBuffer
	camera   *CameraSystem
	viewport utils.Viewport
	grid     *utils.TableGrid // 调试输出格子坐标用，可为 nil

	fullscreenRequested bool
}

// NewInputSystem 创建输入采集系统
func NewInputSystem(source InputSource, buf *components.InputBuffer, cs *CameraSystem) *InputSystem {
	return &InputSystem{
		source: source,
		buffer: buf,
		camera: cs,
	}
}

// SetViewport 更新当前视口尺寸
func (s *InputSystem) SetViewport(vp utils.Viewport) {
	s.viewport = vp
}

// SetGrid 设置牌阵网格，调试输出时附带指针所在的行列
func (s *InputSystem) SetGrid(grid utils.TableGrid) {
	s.grid = &grid
}

// Update 读取本帧输入
func (s *InputSystem) Update() {
	state := s.source.State()
	x, y := float64(state.X), float64(state.Y)

	s.buffer.PointerX = x
	s.buffer.PointerY = y
	s.buffer.PointerInside = s.viewport.Contains(x, y)

	if state.JustPressed {
		s.buffer.PushClick(components.ClickEvent{ScreenX: x, ScreenY: y})
	}

	if state.DebugJustPressed {
		s.logPointer(x, y)
	}

	s.fullscreenRequested = state.FullscreenJustPressed
}

// FullscreenRequested 本帧是否按下了全屏切换键
func (s *InputSystem) FullscreenRequested() bool {
	return s.fullscreenRequested
}

// logPointer 输出指针下的世界坐标（调试用，空格键触发）
func (s *InputSystem) logPointer(x, y float64) {
	if s.camera == nil {
		log.Printf("[InputSystem] pointer (%.0f, %.0f): no camera", x, y)
		return
	}
	wx, wy, ok := s.camera.ResolvePointer(s.viewport, x, y)
	if !ok {
		log.Printf("[InputSystem] pointer (%.0f, %.0f) is outside the viewport", x, y)
		return
	}
	if s.grid != nil {
		if row, col, inside := s.grid.WorldToCell(wx, wy); inside {
			log.Printf("[InputSystem] world coords: (%.1f, %.1f), cell row %d col %d", wx, wy, row, col)
			return
		}
	}
	log.Printf("[InputSystem] world coords: (%.1f, %.1f)", wx, wy)
}
