package utils

// TableGrid 牌阵网格
// 第 row 行第 col 列格子的左上角为 (OriginX + col*CellWidth, OriginY + row*CellHeight)
type TableGrid struct {
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
	Rows       int
	Columns    int
}

// CellOrigin 返回格子左上角的世界坐标
func (g TableGrid) CellOrigin(row, col int) (x, y float64) {
	return g.OriginX + float64(col)*g.CellWidth, g.OriginY + float64(row)*g.CellHeight
}

// CellCenter 返回格子中心的世界坐标
func (g TableGrid) CellCenter(row, col int) (x, y float64) {
	x, y = g.CellOrigin(row, col)
	return x + g.CellWidth/2, y + g.CellHeight/2
}

// Bounds 返回整个网格的世界范围
func (g TableGrid) Bounds() (minX, minY, maxX, maxY float64) {
	maxX, maxY = g.CellOrigin(g.Rows, g.Columns)
	return g.OriginX, g.OriginY, maxX, maxY
}

// WorldToCell 将世界坐标转换为网格坐标
// 参数:
//   - worldX, worldY: 世界坐标
//
// 返回:
//   - row, col: 行列索引
//   - isValid: 是否在网格范围内（右、下边界不含）
func (g TableGrid) WorldToCell(worldX, worldY float64) (row, col int, isValid bool) {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return 0, 0, false
	}

	minX, minY, maxX, maxY := g.Bounds()
	if worldX < minX || worldX >= maxX || worldY < minY || worldY >= maxY {
		return 0, 0, false
	}

	col = int((worldX - g.OriginX) / g.CellWidth)
	row = int((worldY - g.OriginY) / g.CellHeight)

	// 边界检查（防止浮点数计算误差导致的越界）
	col = min(max(col, 0), g.Columns-1)
	row = min(max(row, 0), g.Rows-1)

	return row, col, true
}
