package entities

import (
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/types"
	"github.com/gonewx/cardtable/pkg/utils"
)

// Deck 一副已经摆放到牌桌上的牌
//
// Cards 按目录顺序（花色外层、点数内层）保存 52 个正面实体，
// 进程生命周期内不增删。
type Deck struct {
	cards  []ecs.EntityID
	byID   map[types.CardID]ecs.EntityID
	owners map[ecs.EntityID]ecs.EntityID // 背面实体 -> 拥有它的正面实体
	grid   utils.TableGrid

	// 牌阵包围盒（世界坐标）
	minX, minY, maxX, maxY float64
}

func newDeck(capacity int, grid utils.TableGrid) *Deck {
	return &Deck{
		grid:   grid,
		cards:  make([]ecs.EntityID, 0, capacity),
		byID:   make(map[types.CardID]ecs.EntityID, capacity),
		owners: make(map[ecs.EntityID]ecs.EntityID, capacity),
	}
}

func (d *Deck) add(id types.CardID, front, back ecs.EntityID, x, y, w, h float64) {
	if len(d.cards) == 0 {
		d.minX, d.minY, d.maxX, d.maxY = x, y, x+w, y+h
	} else {
		d.minX = min(d.minX, x)
		d.minY = min(d.minY, y)
		d.maxX = max(d.maxX, x+w)
		d.maxY = max(d.maxY, y+h)
	}
	d.cards = append(d.cards, front)
	d.byID[id] = front
	d.owners[back] = front
}

// Len 返回牌数
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards 返回按目录顺序排列的正面实体（副本）
func (d *Deck) Cards() []ecs.EntityID {
	out := make([]ecs.EntityID, len(d.cards))
	copy(out, d.cards)
	return out
}

// Lookup 按花色点数查找正面实体
func (d *Deck) Lookup(id types.CardID) (ecs.EntityID, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// FrontOf 将任一牌面实体（正面或背面）映射到它所属的牌（正面实体）
func (d *Deck) FrontOf(entity ecs.EntityID) (ecs.EntityID, bool) {
	if front, ok := d.owners[entity]; ok {
		return front, true
	}
	for _, front := range d.cards {
		if front == entity {
			return front, true
		}
	}
	return 0, false
}

// Grid 返回发牌网格
func (d *Deck) Grid() utils.TableGrid {
	return d.grid
}

// Bounds 返回牌阵包围盒（世界坐标）
func (d *Deck) Bounds() (minX, minY, maxX, maxY float64) {
	return d.minX, d.minY, d.maxX, d.maxY
}

// Center 返回牌阵中心（世界坐标）
func (d *Deck) Center() (x, y float64) {
	return (d.minX + d.maxX) / 2, (d.minY + d.maxY) / 2
}
