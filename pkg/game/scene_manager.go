package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene   Scene
	viewportWidth  int
	viewportHeight int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// A ViewportAware scene immediately receives the last known viewport size.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if va, ok := scene.(ViewportAware); ok && sm.viewportWidth > 0 && sm.viewportHeight > 0 {
		va.SetViewport(sm.viewportWidth, sm.viewportHeight)
	}
	log.Printf("[SceneManager] 切换场景: %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录视口尺寸并转发给当前场景（如果它关心）
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.viewportWidth && height == sm.viewportHeight {
		return
	}
	sm.viewportWidth = width
	sm.viewportHeight = height
	if va, ok := sm.currentScene.(ViewportAware); ok {
		va.SetViewport(width, height)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
