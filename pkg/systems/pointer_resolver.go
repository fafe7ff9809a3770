package systems

import (
	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
)

// ResolveHit 找出覆盖世界坐标 (x, y) 的最上层牌（正面实体）
//
// 命中矩形为 [X, X+Width] x [Y, Y+Height]（含边界）。
// 多张牌重叠时取 Z 最大者；Z 相同时取后创建的（ID 更大）。
// 只读，不修改任何组件。
func ResolveHit(em *ecs.EntityManager, x, y float64) (ecs.EntityID, bool) {
	entities := ecs.GetEntitiesWith3[
		*components.CardComponent,
		*components.PositionComponent,
		*components.ClickableComponent,
	](em)

	var (
		best  ecs.EntityID
		bestZ float64
		found bool
	)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if !clickable.IsEnabled || !clickable.Contains(pos.X, pos.Y, x, y) {
			continue
		}
		// entities 按 ID 升序，>= 使同 Z 时后创建者胜出
		if !found || pos.Z >= bestZ {
			best, bestZ, found = id, pos.Z, true
		}
	}
	return best, found
}
