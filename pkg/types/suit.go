// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// Suit 定义扑克牌花色
type Suit int

const (
	// SuitHearts 红心
	SuitHearts Suit = iota
	// SuitClubs 梅花
	SuitClubs
	// SuitSpades 黑桃
	SuitSpades
	// SuitDiamonds 方块
	SuitDiamonds
)

// SuitCount 花色数量
const SuitCount = 4

// String 返回花色的显示名称
// 该名称是稳定的，资源键（如 "cards/cardHearts2.png"）依赖它
func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "Hearts"
	case SuitClubs:
		return "Clubs"
	case SuitSpades:
		return "Spades"
	case SuitDiamonds:
		return "Diamonds"
	default:
		return "Unknown"
	}
}

// Valid 判断花色是否为已定义的四种之一
func (s Suit) Valid() bool {
	return s >= SuitHearts && s <= SuitDiamonds
}

// DefaultSuits 返回默认的花色顺序（行顺序）：红心、梅花、黑桃、方块
func DefaultSuits() []Suit {
	return []Suit{SuitHearts, SuitClubs, SuitSpades, SuitDiamonds}
}

// ParseSuit 解析花色名称（不区分大小写）
func ParseSuit(name string) (Suit, error) {
	for _, s := range DefaultSuits() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return SuitHearts, fmt.Errorf("unknown suit %q", name)
}
