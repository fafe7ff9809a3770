package systems

import (
	"log"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// FaceOwner 把正面或背面实体映射到其正面实体（*entities.Deck 实现）
type FaceOwner interface {
	FrontOf(face ecs.EntityID) (ecs.EntityID, bool)
}

// InteractionSystem 把一帧内的点击转换为翻牌请求
//
// 每次 Dispatch 都重新解析指针，不缓存任何命中结果；
// 没有命中时静默忽略。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	owners        FaceOwner
	orientation   *OrientationSystem
	camera        *CameraSystem
	viewport      utils.Viewport
}

// NewInteractionSystem 创建交互分发系统
func NewInteractionSystem(em *ecs.EntityManager, owners FaceOwner, orient *OrientationSystem, cs *CameraSystem) *InteractionSystem {
	return &InteractionSystem{
		entityManager: em,
		owners:        owners,
		orientation:   orient,
		camera:        cs,
	}
}

// SetViewport 更新当前视口尺寸
func (s *InteractionSystem) SetViewport(vp utils.Viewport) {
	s.viewport = vp
}

// Viewport 返回当前视口尺寸
func (s *InteractionSystem) Viewport() utils.Viewport {
	return s.viewport
}

// Dispatch 同步清空 buf 中的点击，返回被接受的翻牌请求数
func (s *InteractionSystem) Dispatch(buf *components.InputBuffer) int {
	accepted := 0
	for _, click := range buf.Drain() {
		front, ok := s.resolveTarget(click)
		if !ok {
			continue
		}
		if s.orientation.RequestFlip(front) {
			accepted++
			if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, front); ok {
				log.Printf("[InteractionSystem] flip requested: %s", card.ID)
			}
		}
	}
	return accepted
}

func (s *InteractionSystem) resolveTarget(click components.ClickEvent) (ecs.EntityID, bool) {
	if click.Target != 0 {
		return s.owners.FrontOf(click.Target)
	}

	var cam *components.CameraComponent
	if s.camera != nil {
		cam = s.camera.Camera()
	}
	x, y, ok := utils.ResolveWorld(cam, s.viewport, click.ScreenX, click.ScreenY)
	if !ok {
		return 0, false
	}
	return ResolveHit(s.entityManager, x, y)
}
