// Package utils 提供牌桌开发中常用的工具函数
//
// coordinates.go 提供屏幕坐标与世界坐标之间的换算。
//
// # 坐标系统概述
//
//   - **世界坐标**：牌阵所在的平面，原点为第 0 行第 0 列牌的左上角，Y 轴向下
//   - **屏幕坐标**：相对于游戏窗口左上角的像素坐标（Ebiten 默认），Y 轴向下
//   - **摄像机**：CameraComponent.X/Y 是视口中心对应的世界坐标
//
// # 核心转换公式
//
//	scale  = ProjectionScale(camera, viewport)   // 每个屏幕像素对应的世界单位
//	worldX = camera.X + (screenX - viewport.Width/2)  * scale
//	worldY = camera.Y + (screenY - viewport.Height/2) * scale
//
// 场景是平面的，深度（Z）不参与换算。
package utils

import (
	"github.com/gonewx/cardtable/pkg/components"
)

// Viewport 当前视口尺寸（屏幕像素）
type Viewport struct {
	Width  int
	Height int
}

// Valid 视口尺寸是否可用
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Contains 判断屏幕坐标是否在视口内（右、下边界不含）
func (v Viewport) Contains(screenX, screenY float64) bool {
	return screenX >= 0 && screenY >= 0 &&
		screenX < float64(v.Width) && screenY < float64(v.Height)
}

// VisibleArea 计算视口覆盖的世界区域尺寸
//
// AutoMax：保持窗口宽高比，使可见区域不超过 MaxWidth x MaxHeight，
// 并尽可能大（恰有一边等于上限）。
// WindowSize：1 像素 = 1 世界单位。
func VisibleArea(cam *components.CameraComponent, vp Viewport) (width, height float64) {
	w := float64(vp.Width)
	h := float64(vp.Height)

	switch cam.ScalingMode {
	case components.ScalingAutoMax:
		if w*cam.MaxHeight > cam.MaxWidth*h {
			// 窗口比上限更"宽"：宽度顶格
			return cam.MaxWidth, h * cam.MaxWidth / w
		}
		return w * cam.MaxHeight / h, cam.MaxHeight
	default:
		return w, h
	}
}

// ProjectionScale 返回每个屏幕像素对应的世界单位
func ProjectionScale(cam *components.CameraComponent, vp Viewport) float64 {
	areaW, _ := VisibleArea(cam, vp)
	return areaW / float64(vp.Width)
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
// 调用方需保证视口有效
func ScreenToWorld(cam *components.CameraComponent, vp Viewport, screenX, screenY float64) (worldX, worldY float64) {
	scale := ProjectionScale(cam, vp)
	worldX = cam.X + (screenX-float64(vp.Width)/2)*scale
	worldY = cam.Y + (screenY-float64(vp.Height)/2)*scale
	return worldX, worldY
}

// WorldToScreen 将世界坐标转换为屏幕坐标（ScreenToWorld 的逆变换）
func WorldToScreen(cam *components.CameraComponent, vp Viewport, worldX, worldY float64) (screenX, screenY float64) {
	scale := ProjectionScale(cam, vp)
	screenX = (worldX-cam.X)/scale + float64(vp.Width)/2
	screenY = (worldY-cam.Y)/scale + float64(vp.Height)/2
	return screenX, screenY
}

// ResolveWorld 将指针位置解析为世界坐标
//
// 以下情况返回 ok=false（不是错误，只是没有目标）：
//   - 没有注册摄像机（cam 为 nil）
//   - 视口尺寸无效（窗口尚未布局）
//   - 指针在视口之外（例如光标离开了窗口）
func ResolveWorld(cam *components.CameraComponent, vp Viewport, screenX, screenY float64) (worldX, worldY float64, ok bool) {
	if cam == nil || !vp.Valid() || !vp.Contains(screenX, screenY) {
		return 0, 0, false
	}
	worldX, worldY = ScreenToWorld(cam, vp, screenX, screenY)
	return worldX, worldY, true
}
