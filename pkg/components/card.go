package components

import (
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/types"
)

// CardComponent 标识一张牌的正面实体（玩法上可寻址的"牌"）
//
// 正面拥有背面：Back 是背面实体的 ID，背面的生命周期不长于正面。
// 背面实体不保存指向正面的引用，需要时由 Deck 反查。
type CardComponent struct {
	ID    types.CardID
	Value int          // 点数值 0..12
	Back  ecs.EntityID // 背面实体
}

// CardBackComponent 标记牌的背面实体
type CardBackComponent struct{}
