package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
//
// Image 对逻辑层是不透明句柄：逻辑层只负责保存和转交，不读取其内容。
// Image 为 nil 表示资源缺失时使用的占位，渲染系统会画一个纯色矩形代替。
type SpriteComponent struct {
	Image *ebiten.Image
	Key   string // 资源键，用于日志和调试
}
