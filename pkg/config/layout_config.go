package config

// 布局配置常量
// 本文件定义了牌桌场景中的布局参数，所有坐标使用"世界坐标系"（Y 轴向下）

// Deck Grid Configuration (牌阵网格配置)
const (
	// DefaultCellWidth 每列（点数）之间的水平间距（世界单位）
	DefaultCellWidth = 140.0

	// DefaultCellHeight 每行（花色）之间的垂直间距（世界单位）
	DefaultCellHeight = 190.0

	// DefaultCardDepth 正面的 Z 值
	DefaultCardDepth = 1.0

	// BackDepthOffset 背面相对正面下沉的 Z 值（正面绘制在背面之上）
	BackDepthOffset = 0.001

	// DefaultCardWidth 牌面精灵的宽度（世界单位），与素材 140x190 一致
	DefaultCardWidth = 140.0

	// DefaultCardHeight 牌面精灵的高度（世界单位）
	DefaultCardHeight = 190.0
)

// Camera Configuration (摄像机配置)
const (
	// DefaultViewportMaxWidth AutoMax 模式下可见区域的最大宽度
	DefaultViewportMaxWidth = 3800.0

	// DefaultViewportMaxHeight AutoMax 模式下可见区域的最大高度
	DefaultViewportMaxHeight = 2100.0

	// DefaultCameraFollowSpeed 摄像机跟随速度（世界单位/秒）
	DefaultCameraFollowSpeed = 1200.0
)

// Orientation Configuration (朝向配置)
const (
	// DefaultAngularStepDeg 连续模式下每帧旋转的角度
	DefaultAngularStepDeg = 1.0

	// DefaultThresholdDeg 可见性阈值角度：偏离 0° 不小于该值时显示背面
	DefaultThresholdDeg = 45.0

	// DefaultFlipDuration 一次翻牌动画（90° 转动）的时长（秒）
	DefaultFlipDuration = 0.25

	// FlipAnimationDeg 翻牌动画代表的转动角度
	FlipAnimationDeg = 90.0

	// DefaultFlipEasing 翻牌动画的显示曲线
	DefaultFlipEasing = "easeInOut"
)

// Asset Configuration (资源配置)
const (
	// DefaultFaceKeyTemplate 正面图片的资源键模板
	DefaultFaceKeyTemplate = "cards/card{suit}{rank}.png"

	// DefaultBackKey 背面图片的资源键（所有牌共用）
	DefaultBackKey = "cards/cardBack_blue2.png"

	// DefaultAssetBasePath 图片资源根目录
	DefaultAssetBasePath = "assets"
)

// Window Configuration (窗口配置)
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	WindowTitle         = "Card Table"
)
