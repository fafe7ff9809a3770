package components

// PositionComponent 存储实体在世界坐标系中的位置
//
// 牌面实体的 X/Y 是牌面矩形的左上角（世界坐标，Y 轴向下），
// Z 决定绘制与点击命中的先后：Z 越大越靠上。
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}
