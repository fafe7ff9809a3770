package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
)

// OrientationSettings 朝向系统参数
type OrientationSettings struct {
	StepDeg      float64          // 连续模式下每帧旋转的角度
	ThresholdDeg float64          // 偏离 0° 达到该角度即显示背面
	FlipDuration float64          // 一次翻牌动画的时长（秒）
	Easing       utils.EasingFunc // 翻牌动画显示曲线，nil 为线性
}

// DefaultOrientationSettings 返回默认参数
func DefaultOrientationSettings() OrientationSettings {
	return OrientationSettings{
		StepDeg:      config.DefaultAngularStepDeg,
		ThresholdDeg: config.DefaultThresholdDeg,
		FlipDuration: config.DefaultFlipDuration,
		Easing:       utils.EasingByName(config.DefaultFlipEasing),
	}
}

// OrientationSettingsFromConfig 从牌桌配置构造参数
func OrientationSettingsFromConfig(cfg *config.TableConfig) OrientationSettings {
	return OrientationSettings{
		StepDeg:      cfg.Orientation.StepDeg,
		ThresholdDeg: cfg.Orientation.ThresholdDeg,
		FlipDuration: cfg.Orientation.FlipDuration,
		Easing:       utils.EasingByName(cfg.Orientation.FlipEasing),
	}
}

// OrientationSystem 维护每张牌的朝向状态并同步正反面的可见性
//
// 两种驱动方式共用同一个组件：
//   - DriveRotation：每帧推进 AngleDeg，牌面由 FaceForAngle 推导
//   - DriveEvent：RequestFlip 启动翻牌动画，进度到 1 时牌面翻转一次
//
// 只写 OrientationComponent 与正反面的 VisibilityComponent。
type OrientationSystem struct {
	entityManager *ecs.EntityManager
	settings      OrientationSettings
}

// NewOrientationSystem 创建朝向系统
func NewOrientationSystem(em *ecs.EntityManager, settings OrientationSettings) *OrientationSystem {
	if settings.Easing == nil {
		settings.Easing = utils.EaseLinear
	}
	return &OrientationSystem{
		entityManager: em,
		settings:      settings,
	}
}

// FaceForAngle 由旋转角度推导显示的牌面
//
// 角度先归一化到 [0, 360)，再取到 0° 的距离 d（θ 或 360-θ）。
// d < threshold 显示正面，否则显示背面（恰好等于阈值时为背面）。
// NaN 或无穷角度属于上游错误，直接 panic。
func FaceForAngle(angleDeg, thresholdDeg float64) components.Face {
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		panic(fmt.Sprintf("invalid orientation: angle %v", angleDeg))
	}
	a := wrapDegrees(angleDeg)
	d := math.Min(a, 360-a)
	if d < thresholdDeg {
		return components.FaceFront
	}
	return components.FaceBack
}

// wrapDegrees 将角度归一化到 [0, 360)
func wrapDegrees(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 这类值加 360 后会舍入成 360
	if a >= 360 {
		a = 0
	}
	return a
}

// Update 推进所有牌的朝向
func (s *OrientationSystem) Update(deltaTime float64) {
	if math.IsNaN(deltaTime) || deltaTime < 0 {
		panic(fmt.Sprintf("invalid orientation: delta time %v", deltaTime))
	}

	entities := ecs.GetEntitiesWith2[
		*components.OrientationComponent,
		*components.CardComponent,
	](s.entityManager)

	for _, id := range entities {
		orient, _ := ecs.GetComponent[*components.OrientationComponent](s.entityManager, id)
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)

		switch orient.Mode {
		case components.DriveRotation:
			s.updateRotation(orient)
		case components.DriveEvent:
			s.updateFlip(id, card, orient, deltaTime)
		}

		s.applyVisibility(id, card.Back, orient.Face)
	}
}

func (s *OrientationSystem) updateRotation(orient *components.OrientationComponent) {
	if orient.Spinning {
		orient.AngleDeg = wrapDegrees(orient.AngleDeg + s.settings.StepDeg)
	}
	orient.Face = FaceForAngle(orient.AngleDeg, s.settings.ThresholdDeg)
}

func (s *OrientationSystem) updateFlip(id ecs.EntityID, card *components.CardComponent, orient *components.OrientationComponent, deltaTime float64) {
	if !orient.Animating {
		return
	}
	checkProgress(orient.Progress)

	orient.Progress += deltaTime / s.settings.FlipDuration
	if orient.Progress < 1 {
		return
	}

	// 动画完成：牌面翻转一次，进度归零，等待下一次请求
	orient.Face = orient.Face.Opposite()
	orient.Progress = 0
	orient.Animating = false
	log.Printf("[OrientationSystem] %s (entity %d) flipped to %s", card.ID, id, orient.Face)
}

func checkProgress(p float64) {
	if math.IsNaN(p) || p < 0 {
		panic(fmt.Sprintf("invalid orientation: flip progress %v", p))
	}
}

// applyVisibility 按牌面写入正反两个实体的可见性
func (s *OrientationSystem) applyVisibility(front, back ecs.EntityID, face components.Face) {
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, front); ok {
		vis.Visible = face == components.FaceFront
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, back); ok {
		vis.Visible = face == components.FaceBack
	}
}

// RequestFlip 请求翻转一张牌（front 为正面实体）
//
// 仅对空闲的事件驱动牌生效；动画进行中的重复请求、连续模式的牌、
// 未知实体都返回 false 且不改变任何状态。
func (s *OrientationSystem) RequestFlip(front ecs.EntityID) bool {
	orient, ok := ecs.GetComponent[*components.OrientationComponent](s.entityManager, front)
	if !ok || orient.Mode != components.DriveEvent || orient.Animating {
		return false
	}
	orient.Animating = true
	orient.Progress = 0
	return true
}

// Face 返回牌当前显示的一面
func (s *OrientationSystem) Face(front ecs.EntityID) (components.Face, bool) {
	orient, ok := ecs.GetComponent[*components.OrientationComponent](s.entityManager, front)
	if !ok {
		return components.FaceFront, false
	}
	return orient.Face, true
}

// DisplayAngle 返回用于绘制的旋转角度（度）
// 连续模式即当前角度；事件模式为缓动后的进度 × 90°
func (s *OrientationSystem) DisplayAngle(orient *components.OrientationComponent) float64 {
	if orient.Mode == components.DriveEvent {
		if !orient.Animating {
			return 0
		}
		checkProgress(orient.Progress)
		return s.settings.Easing(utils.Clamp01(orient.Progress)) * config.FlipAnimationDeg
	}
	return orient.AngleDeg
}
