package components

// ScalingMode 摄像机投影的缩放模式
type ScalingMode int

const (
	// ScalingAutoMax 在不超过 MaxWidth x MaxHeight 的前提下保持窗口宽高比，
	// 尽可能显示更大的世界区域
	ScalingAutoMax ScalingMode = iota
	// ScalingWindowSize 1 个屏幕像素 = 1 个世界单位
	ScalingWindowSize
)

// String 返回配置文件中使用的名称
func (m ScalingMode) String() string {
	switch m {
	case ScalingAutoMax:
		return "auto_max"
	case ScalingWindowSize:
		return "window_size"
	default:
		return "unknown"
	}
}

// CameraComponent 描述 2D 摄像机：变换（世界位置）与投影（缩放模式、视口范围）。
//
// X/Y 是视口中心对应的世界坐标。
type CameraComponent struct {
	X float64
	Y float64

	ScalingMode ScalingMode
	MaxWidth    float64 // AutoMax 模式下可见区域的最大宽度（世界单位）
	MaxHeight   float64 // AutoMax 模式下可见区域的最大高度（世界单位）

	// 跟随目标（世界坐标），仅在 Watching 为 true 时生效
	WatchX   float64
	WatchY   float64
	Watching bool

	// FollowSpeed 跟随速度（世界单位/秒），<= 0 表示立即对准
	FollowSpeed float64
}
