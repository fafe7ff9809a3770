package components

// Face 牌当前显示的一面
type Face int

const (
	// FaceFront 正面（带点数的一面）
	FaceFront Face = iota
	// FaceBack 背面
	FaceBack
)

// String 返回牌面名称
func (f Face) String() string {
	if f == FaceBack {
		return "Back"
	}
	return "Front"
}

// Opposite 返回另一面
func (f Face) Opposite() Face {
	if f == FaceBack {
		return FaceFront
	}
	return FaceBack
}

// DriveMode 朝向状态机的驱动方式
type DriveMode int

const (
	// DriveRotation 连续旋转驱动：每帧推进角度，由角度推导牌面
	DriveRotation DriveMode = iota
	// DriveEvent 事件驱动：点击请求翻牌，动画完成时切换牌面
	DriveEvent
)

// String 返回配置文件中使用的名称
func (m DriveMode) String() string {
	switch m {
	case DriveRotation:
		return "continuous"
	case DriveEvent:
		return "discrete"
	default:
		return "unknown"
	}
}

// OrientationComponent 牌的朝向状态
//
// 存储的是连续量（旋转角度或翻牌动画进度），Face 是由它们推导出的离散结果，
// 由 OrientationSystem 在每帧维护。
type OrientationComponent struct {
	Mode DriveMode

	// AngleDeg 绕竖直轴的旋转角度（度），保持在 [0, 360)
	AngleDeg float64
	// Spinning 连续模式下该牌是否参与旋转
	Spinning bool

	// Progress 翻牌动画进度 [0, 1]
	Progress float64
	// Animating 翻牌动画是否进行中
	Animating bool

	// Face 当前显示的一面
	Face Face
}
