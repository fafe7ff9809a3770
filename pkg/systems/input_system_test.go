package systems

import (
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// scriptedInput 按顺序返回预设的输入状态
type scriptedInput struct {
	states []utils.InputState
	frame  int
}

func (s *scriptedInput) State() utils.InputState {
	if s.frame >= len(s.states) {
		return utils.InputState{}
	}
	st := s.states[s.frame]
	s.frame++
	return st
}

// TestInputSystem_Update 测试点击与指针位置写入缓冲区
func TestInputSystem_Update(t *testing.T) {
	src := &scriptedInput{states: []utils.InputState{
		{X: 100, Y: 50},
		{X: 120, Y: 60, JustPressed: true},
		{X: 2000, Y: 60, DebugJustPressed: true, FullscreenJustPressed: true},
	}}
	buf := &components.InputBuffer{}
	cs := NewCameraSystem(ecs.NewEntityManager(), DefaultCamera())
	sys := NewInputSystem(src, buf, cs)
	sys.SetViewport(utils.Viewport{Width: 1280, Height: 720})

	sys.Update()
	if buf.PointerX != 100 || buf.PointerY != 50 || !buf.PointerInside {
		t.Errorf("frame 1 pointer: %+v", *buf)
	}
	if len(buf.Clicks) != 0 {
		t.Errorf("frame 1: unexpected clicks %v", buf.Clicks)
	}

	sys.Update()
	if len(buf.Clicks) != 1 || buf.Clicks[0].ScreenX != 120 || buf.Clicks[0].ScreenY != 60 {
		t.Errorf("frame 2 clicks: %v", buf.Clicks)
	}
	if sys.FullscreenRequested() {
		t.Error("frame 2: fullscreen should not be requested")
	}

	sys.Update()
	if buf.PointerInside {
		t.Error("frame 3: pointer should be outside the viewport")
	}
	if !sys.FullscreenRequested() {
		t.Error("frame 3: fullscreen should be requested")
	}
	// 未被分发的点击保留在缓冲区
	if len(buf.Clicks) != 1 {
		t.Errorf("frame 3: expected 1 pending click, got %d", len(buf.Clicks))
	}
}

// TestInputSystem_NoCamera 测试没有镜头时调试输出不会崩溃
func TestInputSystem_NoCamera(t *testing.T) {
	src := &scriptedInput{states: []utils.InputState{{X: 1, Y: 1, DebugJustPressed: true}}}
	sys := NewInputSystem(src, &components.InputBuffer{}, nil)
	sys.Update()
}
