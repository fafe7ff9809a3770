package systems

import (
	"math"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// cameraSnapDistance 距离目标小于该值（世界单位）时直接对准
const cameraSnapDistance = 1.0

// CameraSystem 管理唯一的摄像机实体，并让摄像机平滑跟随观察点。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// CameraFromConfig 根据配置构造摄像机组件
func CameraFromConfig(cfg *config.TableConfig) (components.CameraComponent, error) {
	mode, err := cfg.ScalingMode()
	if err != nil {
		return components.CameraComponent{}, err
	}
	return components.CameraComponent{
		X:           cfg.Camera.X,
		Y:           cfg.Camera.Y,
		ScalingMode: mode,
		MaxWidth:    cfg.Camera.MaxWidth,
		MaxHeight:   cfg.Camera.MaxHeight,
		FollowSpeed: cfg.Camera.FollowSpeed,
	}, nil
}

// DefaultCamera 返回默认摄像机：原点、AutoMax 3800x2100
func DefaultCamera() components.CameraComponent {
	return components.CameraComponent{
		ScalingMode: components.ScalingAutoMax,
		MaxWidth:    config.DefaultViewportMaxWidth,
		MaxHeight:   config.DefaultViewportMaxHeight,
		FollowSpeed: config.DefaultCameraFollowSpeed,
	}
}

// NewCameraSystem 创建镜头控制系统，并以 initial 为初始状态创建镜头实体。
func NewCameraSystem(em *ecs.EntityManager, initial components.CameraComponent) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	cam := initial
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &cam)

	return cs
}

// Entity 返回镜头实体ID
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}

// Camera 返回镜头组件；镜头实体被销毁后返回 nil
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return nil
	}
	return cam
}

// Watch 设置观察点（世界坐标），镜头会在后续 Update 中向其移动。
func (cs *CameraSystem) Watch(x, y float64) {
	cam := cs.Camera()
	if cam == nil {
		return
	}
	cam.WatchX = x
	cam.WatchY = y
	cam.Watching = true
}

// Unwatch 取消观察点，镜头停在当前位置。
func (cs *CameraSystem) Unwatch() {
	if cam := cs.Camera(); cam != nil {
		cam.Watching = false
	}
}

// Update 以 FollowSpeed 向观察点移动，进入 1 个单位内时对准。
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.Camera()
	if cam == nil || !cam.Watching {
		return
	}

	dx := cam.WatchX - cam.X
	dy := cam.WatchY - cam.Y
	dist := math.Hypot(dx, dy)
	step := cam.FollowSpeed * dt

	if dist < cameraSnapDistance || cam.FollowSpeed <= 0 || step >= dist {
		cam.X = cam.WatchX
		cam.Y = cam.WatchY
		return
	}

	cam.X += dx / dist * step
	cam.Y += dy / dist * step
}

// ResolvePointer 将屏幕坐标解析为世界坐标，见 utils.ResolveWorld
func (cs *CameraSystem) ResolvePointer(vp utils.Viewport, screenX, screenY float64) (float64, float64, bool) {
	return utils.ResolveWorld(cs.Camera(), vp, screenX, screenY)
}
