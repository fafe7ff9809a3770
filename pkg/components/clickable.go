package components

// ClickableComponent 标记实体可以被鼠标点击
// 可点击区域是以 PositionComponent 为左上角、Width x Height 的矩形（世界坐标）
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(世界单位)
	Height    float64 // 可点击区域的高度(世界单位)
	IsEnabled bool    // 是否可以被点击
}

// Contains 判断世界坐标点是否落在以 (originX, originY) 为左上角的可点击区域内（含边界）
func (c *ClickableComponent) Contains(originX, originY, x, y float64) bool {
	return x >= originX && x <= originX+c.Width &&
		y >= originY && y <= originY+c.Height
}
