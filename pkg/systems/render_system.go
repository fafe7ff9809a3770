package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 占位图颜色（图片缺失时使用）
var (
	placeholderFrontColor = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	placeholderBackColor  = color.RGBA{R: 40, G: 70, B: 150, A: 255}
)

// FaceDrawItem 一个待绘制的牌面
type FaceDrawItem struct {
	Entity   ecs.EntityID
	X, Y, Z  float64 // 世界坐标（左上角）
	Image    *ebiten.Image
	Visible  bool
	AngleDeg float64 // 绕竖直轴的显示角度
	Back     bool
}

// RenderSystem 绘制牌桌上的所有牌面
//
// 世界坐标经摄像机投影到屏幕；旋转用水平方向 |cos(angle)| 的压缩近似。
// 图片句柄为 nil 时绘制纯色矩形。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	owners        FaceOwner
	orientation   *OrientationSystem
	cardWidth     float64 // 牌在世界中的宽度
	cardHeight    float64 // 牌在世界中的高度
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, owners FaceOwner, orient *OrientationSystem, cardWidth, cardHeight float64) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		owners:        owners,
		orientation:   orient,
		cardWidth:     cardWidth,
		cardHeight:    cardHeight,
	}
}

// CollectFaces 收集所有牌面，按 Z 升序排列（Z 相同按实体ID）
func (s *RenderSystem) CollectFaces() []FaceDrawItem {
	entities := ecs.GetEntitiesWith3[
		*components.SpriteComponent,
		*components.PositionComponent,
		*components.VisibilityComponent,
	](s.entityManager)

	items := make([]FaceDrawItem, 0, len(entities))
	for _, id := range entities {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)

		items = append(items, FaceDrawItem{
			Entity:   id,
			X:        pos.X,
			Y:        pos.Y,
			Z:        pos.Z,
			Image:    sprite.Image,
			Visible:  vis.Visible,
			AngleDeg: s.angleOf(id),
			Back:     ecs.HasComponent[*components.CardBackComponent](s.entityManager, id),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Z != items[j].Z {
			return items[i].Z < items[j].Z
		}
		return items[i].Entity < items[j].Entity
	})
	return items
}

// angleOf 返回牌面的显示角度；背面跟随其正面
func (s *RenderSystem) angleOf(id ecs.EntityID) float64 {
	if s.orientation == nil || s.owners == nil {
		return 0
	}
	front, ok := s.owners.FrontOf(id)
	if !ok {
		return 0
	}
	orient, ok := ecs.GetComponent[*components.OrientationComponent](s.entityManager, front)
	if !ok {
		return 0
	}
	return s.orientation.DisplayAngle(orient)
}

// Draw 绘制所有可见牌面
func (s *RenderSystem) Draw(screen *ebiten.Image, cam *components.CameraComponent, vp utils.Viewport) {
	if cam == nil || !vp.Valid() {
		return
	}

	pxPerUnit := 1 / utils.ProjectionScale(cam, vp)
	for _, item := range s.CollectFaces() {
		if !item.Visible {
			continue
		}
		s.drawFace(screen, cam, vp, item, pxPerUnit)
	}
}

func (s *RenderSystem) drawFace(screen *ebiten.Image, cam *components.CameraComponent, vp utils.Viewport, item FaceDrawItem, pxPerUnit float64) {
	squash := math.Abs(math.Cos(item.AngleDeg * math.Pi / 180))

	// 以牌的竖直中线为轴压缩
	centerX, top := utils.WorldToScreen(cam, vp, item.X+s.cardWidth/2, item.Y)
	w := s.cardWidth * pxPerUnit * squash
	h := s.cardHeight * pxPerUnit

	if item.Image == nil {
		clr := placeholderFrontColor
		if item.Back {
			clr = placeholderBackColor
		}
		vector.DrawFilledRect(screen, float32(centerX-w/2), float32(top), float32(w), float32(h), clr, true)
		return
	}

	bounds := item.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, 0)
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(centerX, top)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(item.Image, op)
}
