package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置值不合法
var ErrInvalidConfig = errors.New("invalid table config")

// 摄像机跟随目标
const (
	WatchNone       = "none"
	WatchDeckCenter = "deck_center"
)

// TableConfig 牌桌配置（data/cardtable.yaml）
//
// 结构：
//
//	layout:      网格与精灵尺寸
//	orientation: 朝向状态机（驱动方式、步进角、阈值、翻牌时长）
//	camera:      摄像机变换与投影
//	assets:      资源键模板
//	deck:        花色/点数顺序（可选，默认标准顺序）
//	window:      窗口尺寸
type TableConfig struct {
	Layout      LayoutConfig      `yaml:"layout"`
	Orientation OrientationConfig `yaml:"orientation"`
	Camera      CameraConfig      `yaml:"camera"`
	Assets      AssetConfig       `yaml:"assets"`
	Deck        DeckConfig        `yaml:"deck"`
	Window      WindowConfig      `yaml:"window"`
}

// LayoutConfig 牌阵网格配置
type LayoutConfig struct {
	OriginX    float64 `yaml:"origin_x"`    // 第 0 行第 0 列的世界坐标
	OriginY    float64 `yaml:"origin_y"`
	CellWidth  float64 `yaml:"cell_width"`  // 列间距，默认 140
	CellHeight float64 `yaml:"cell_height"` // 行间距，默认 190
	CardDepth  float64 `yaml:"card_depth"`  // 正面 Z 值，默认 1
	CardWidth  float64 `yaml:"card_width"`  // 精灵宽度（点击矩形），默认 140
	CardHeight float64 `yaml:"card_height"` // 精灵高度（点击矩形），默认 190
}

// OrientationConfig 朝向状态机配置
type OrientationConfig struct {
	DriveMode       string   `yaml:"drive_mode"`       // "continuous" 或 "discrete"
	StepDeg         float64  `yaml:"step_deg"`         // 连续模式每帧旋转角度，默认 1
	ThresholdDeg    float64  `yaml:"threshold_deg"`    // 可见性阈值，默认 45
	FlipDuration    float64  `yaml:"flip_duration"`    // 翻牌动画时长（秒），默认 0.25
	RotationTargets []string `yaml:"rotation_targets"` // 连续模式下参与旋转的牌，如 ["Diamonds-2"]；为空表示全部
	FlipEasing      string   `yaml:"flip_easing"`      // 翻牌动画显示曲线："linear"、"easeInOut"、"easeOut"
}

// CameraConfig 摄像机配置
type CameraConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	ScalingMode string  `yaml:"scaling_mode"` // "auto_max" 或 "window_size"
	MaxWidth    float64 `yaml:"max_width"`    // 默认 3800
	MaxHeight   float64 `yaml:"max_height"`   // 默认 2100
	Watch       string  `yaml:"watch"`        // "none" 或 "deck_center"
	FollowSpeed float64 `yaml:"follow_speed"` // 跟随速度（世界单位/秒）
}

// AssetConfig 资源配置
type AssetConfig struct {
	BasePath          string `yaml:"base_path"`
	FaceKeyTemplate   string `yaml:"face_key_template"`
	BackKey           string `yaml:"back_key"`
	AllowPlaceholders bool   `yaml:"allow_placeholders"` // 缺失图片时是否用占位图继续
}

// DeckConfig 花色/点数顺序
type DeckConfig struct {
	Suits []string `yaml:"suits"`
	Ranks []string `yaml:"ranks"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Default 返回默认配置
func Default() *TableConfig {
	return &TableConfig{
		Layout: LayoutConfig{
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
			CardDepth:  DefaultCardDepth,
			CardWidth:  DefaultCardWidth,
			CardHeight: DefaultCardHeight,
		},
		Orientation: OrientationConfig{
			DriveMode:    components.DriveRotation.String(),
			StepDeg:      DefaultAngularStepDeg,
			ThresholdDeg: DefaultThresholdDeg,
			FlipDuration: DefaultFlipDuration,
			FlipEasing:   DefaultFlipEasing,
		},
		Camera: CameraConfig{
			ScalingMode: components.ScalingAutoMax.String(),
			MaxWidth:    DefaultViewportMaxWidth,
			MaxHeight:   DefaultViewportMaxHeight,
			Watch:       WatchNone,
			FollowSpeed: DefaultCameraFollowSpeed,
		},
		Assets: AssetConfig{
			BasePath:        DefaultAssetBasePath,
			FaceKeyTemplate: DefaultFaceKeyTemplate,
			BackKey:         DefaultBackKey,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  WindowTitle,
		},
	}
}

// LoadTableConfig 从YAML文件加载牌桌配置
// 文件中未出现的字段保留默认值
func LoadTableConfig(path string) (*TableConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table config file %s: %w", path, err)
	}
	return ParseTableConfig(data, path)
}

// ParseTableConfig 解析 YAML 数据并校验
// source 仅用于错误信息
func ParseTableConfig(data []byte, source string) (*TableConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse table config YAML from %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid table config in %s: %w", source, err)
	}
	return cfg, nil
}

// Validate 校验配置取值
func (c *TableConfig) Validate() error {
	l := c.Layout
	if !positive(l.CellWidth) || !positive(l.CellHeight) {
		return fmt.Errorf("%w: cell size must be positive, got %vx%v", ErrInvalidConfig, l.CellWidth, l.CellHeight)
	}
	if !positive(l.CardWidth) || !positive(l.CardHeight) {
		return fmt.Errorf("%w: card size must be positive, got %vx%v", ErrInvalidConfig, l.CardWidth, l.CardHeight)
	}
	if !finite(l.CardDepth) || !finite(l.OriginX) || !finite(l.OriginY) {
		return fmt.Errorf("%w: layout origin/depth must be finite", ErrInvalidConfig)
	}

	o := c.Orientation
	if _, err := c.DriveMode(); err != nil {
		return err
	}
	if !finite(o.StepDeg) {
		return fmt.Errorf("%w: step_deg must be finite", ErrInvalidConfig)
	}
	if !(o.ThresholdDeg > 0 && o.ThresholdDeg < 180) {
		return fmt.Errorf("%w: threshold_deg must be in (0, 180), got %v", ErrInvalidConfig, o.ThresholdDeg)
	}
	if !positive(o.FlipDuration) {
		return fmt.Errorf("%w: flip_duration must be positive, got %v", ErrInvalidConfig, o.FlipDuration)
	}
	switch o.FlipEasing {
	case "linear", "easeInOut", "easeOut":
	default:
		return fmt.Errorf("%w: unknown flip_easing %q", ErrInvalidConfig, o.FlipEasing)
	}
	if _, err := c.RotationTargets(); err != nil {
		return err
	}

	cam := c.Camera
	if _, err := c.ScalingMode(); err != nil {
		return err
	}
	if !positive(cam.MaxWidth) || !positive(cam.MaxHeight) {
		return fmt.Errorf("%w: viewport extents must be positive, got %vx%v", ErrInvalidConfig, cam.MaxWidth, cam.MaxHeight)
	}
	if cam.Watch != WatchNone && cam.Watch != WatchDeckCenter {
		return fmt.Errorf("%w: unknown camera watch %q", ErrInvalidConfig, cam.Watch)
	}

	a := c.Assets
	if !strings.Contains(a.FaceKeyTemplate, types.SuitPlaceholder) || !strings.Contains(a.FaceKeyTemplate, types.RankPlaceholder) {
		return fmt.Errorf("%w: face_key_template %q must contain %s and %s",
			ErrInvalidConfig, a.FaceKeyTemplate, types.SuitPlaceholder, types.RankPlaceholder)
	}
	if a.BackKey == "" {
		return fmt.Errorf("%w: back_key is empty", ErrInvalidConfig)
	}

	suits, err := c.Suits()
	if err != nil {
		return err
	}
	ranks, err := c.Ranks()
	if err != nil {
		return err
	}
	if _, err := types.Catalog(suits, ranks); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalidConfig)
	}
	return nil
}

// DriveMode 解析驱动方式
func (c *TableConfig) DriveMode() (components.DriveMode, error) {
	switch c.Orientation.DriveMode {
	case components.DriveRotation.String():
		return components.DriveRotation, nil
	case components.DriveEvent.String():
		return components.DriveEvent, nil
	}
	return components.DriveRotation, fmt.Errorf("%w: unknown drive_mode %q", ErrInvalidConfig, c.Orientation.DriveMode)
}

// ScalingMode 解析摄像机缩放模式
func (c *TableConfig) ScalingMode() (components.ScalingMode, error) {
	switch c.Camera.ScalingMode {
	case components.ScalingAutoMax.String():
		return components.ScalingAutoMax, nil
	case components.ScalingWindowSize.String():
		return components.ScalingWindowSize, nil
	}
	return components.ScalingAutoMax, fmt.Errorf("%w: unknown scaling_mode %q", ErrInvalidConfig, c.Camera.ScalingMode)
}

// RotationTargets 解析连续模式下参与旋转的牌；nil 表示全部
func (c *TableConfig) RotationTargets() ([]types.CardID, error) {
	if len(c.Orientation.RotationTargets) == 0 {
		return nil, nil
	}
	ids := make([]types.CardID, 0, len(c.Orientation.RotationTargets))
	for _, name := range c.Orientation.RotationTargets {
		id, err := types.ParseCardID(name)
		if err != nil {
			return nil, fmt.Errorf("%w: rotation_targets: %w", ErrInvalidConfig, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Suits 解析花色顺序；未配置时返回默认顺序
func (c *TableConfig) Suits() ([]types.Suit, error) {
	if len(c.Deck.Suits) == 0 {
		return types.DefaultSuits(), nil
	}
	suits := make([]types.Suit, 0, len(c.Deck.Suits))
	for _, name := range c.Deck.Suits {
		s, err := types.ParseSuit(name)
		if err != nil {
			return nil, fmt.Errorf("%w: deck.suits: %w", ErrInvalidConfig, err)
		}
		suits = append(suits, s)
	}
	return suits, nil
}

// Ranks 解析点数顺序；未配置时返回默认顺序
func (c *TableConfig) Ranks() ([]types.Rank, error) {
	if len(c.Deck.Ranks) == 0 {
		return types.DefaultRanks(), nil
	}
	ranks := make([]types.Rank, 0, len(c.Deck.Ranks))
	for _, sym := range c.Deck.Ranks {
		r, err := types.ParseRank(sym)
		if err != nil {
			return nil, fmt.Errorf("%w: deck.ranks: %w", ErrInvalidConfig, err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
