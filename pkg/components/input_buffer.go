package components

import "github.com/gonewx/cardtable/pkg/ecs"

// ClickEvent 一次原始点击
//
// Target 非 0 时表示外部拾取系统已经给出了命中的实体（正面或背面），
// 分发时跳过坐标解析。
type ClickEvent struct {
	ScreenX float64
	ScreenY float64
	Target  ecs.EntityID
}

// InputBuffer 一帧内收集到的输入
// 由输入采集方填充，交给 InteractionSystem 在同一帧内同步清空
type InputBuffer struct {
	// 当前指针位置（屏幕坐标），PointerInside 为 false 时无意义
	PointerX      float64
	PointerY      float64
	PointerInside bool

	Clicks []ClickEvent
}

// PushClick 追加一次点击
func (b *InputBuffer) PushClick(ev ClickEvent) {
	b.Clicks = append(b.Clicks, ev)
}

// Drain 取出并清空本帧的点击队列
func (b *InputBuffer) Drain() []ClickEvent {
	clicks := b.Clicks
	b.Clicks = nil
	return clicks
}
