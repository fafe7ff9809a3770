package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (the card table).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// ViewportAware 是一个可选接口，场景实现它即可在窗口尺寸变化时得到通知
//
// 指针坐标到世界坐标的换算依赖视口尺寸，因此牌桌场景需要实现它。
type ViewportAware interface {
	// SetViewport 设置当前视口尺寸（屏幕像素）
	SetViewport(width, height int)
}
