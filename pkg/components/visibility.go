package components

// VisibilityComponent 控制牌面是否被绘制
// 朝向状态机唯一对外可见的输出就是这个标志
type VisibilityComponent struct {
	Visible bool
}
