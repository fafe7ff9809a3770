package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/game"
	"github.com/gonewx/cardtable/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeLoader 记录请求过的资源键；missing 中的键返回 ErrAssetMissing
// 返回的 nil 图片作为不透明句柄使用
type fakeLoader struct {
	requested []string
	missing   map[string]bool
}

func (f *fakeLoader) LoadImage(key string) (*ebiten.Image, error) {
	f.requested = append(f.requested, key)
	if f.missing[key] {
		return nil, fmt.Errorf("%w: %s", game.ErrAssetMissing, key)
	}
	return nil, nil
}

func (f *fakeLoader) Placeholder() *ebiten.Image { return nil }

func buildDefaultDeck(t *testing.T) (*ecs.EntityManager, *Deck) {
	t.Helper()
	em := ecs.NewEntityManager()
	deck, err := BuildDeck(em, &fakeLoader{}, DefaultDeckOptions(), types.DefaultSuits(), types.DefaultRanks())
	if err != nil {
		t.Fatalf("BuildDeck error: %v", err)
	}
	return em, deck
}

// TestBuildDeck_AllIdentities 测试 52 种花色点数组合恰好各出现一次
func TestBuildDeck_AllIdentities(t *testing.T) {
	em, deck := buildDefaultDeck(t)

	if deck.Len() != types.DeckSize {
		t.Fatalf("Expected %d cards, got %d", types.DeckSize, deck.Len())
	}

	seen := make(map[types.CardID]int)
	for _, id := range ecs.GetEntitiesWith1[*components.CardComponent](em) {
		card, _ := ecs.GetComponent[*components.CardComponent](em, id)
		seen[card.ID]++
	}
	if len(seen) != types.DeckSize {
		t.Errorf("Expected %d distinct identities, got %d", types.DeckSize, len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Card %s appears %d times", id, n)
		}
	}

	// 每张牌一个正面 + 一个背面
	if em.Count() != 2*types.DeckSize {
		t.Errorf("Expected %d entities, got %d", 2*types.DeckSize, em.Count())
	}
}

// TestBuildDeck_UniquePositions 测试任意两张牌的位置都不同
func TestBuildDeck_UniquePositions(t *testing.T) {
	em, deck := buildDefaultDeck(t)

	positions := make(map[[2]float64]types.CardID)
	for _, front := range deck.Cards() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, front)
		card, _ := ecs.GetComponent[*components.CardComponent](em, front)
		key := [2]float64{pos.X, pos.Y}
		if other, dup := positions[key]; dup {
			t.Errorf("%s and %s share position %v", card.ID, other, key)
		}
		positions[key] = card.ID
	}
}

// TestBuildDeck_Deterministic 测试相同输入产生相同布局
func TestBuildDeck_Deterministic(t *testing.T) {
	em1, deck1 := buildDefaultDeck(t)
	em2, deck2 := buildDefaultDeck(t)

	c1, c2 := deck1.Cards(), deck2.Cards()
	for i := range c1 {
		p1, _ := ecs.GetComponent[*components.PositionComponent](em1, c1[i])
		p2, _ := ecs.GetComponent[*components.PositionComponent](em2, c2[i])
		if *p1 != *p2 {
			t.Errorf("card #%d: %v != %v", i, *p1, *p2)
		}
		if c1[i] != c2[i] {
			t.Errorf("card #%d: entity ids differ (%d vs %d)", i, c1[i], c2[i])
		}
	}
}

// TestBuildDeck_DiamondsTwo 测试方块 2 落在第 3 行第 0 列 => (0, 570)
func TestBuildDeck_DiamondsTwo(t *testing.T) {
	em, deck := buildDefaultDeck(t)

	front, ok := deck.Lookup(types.CardID{Suit: types.SuitDiamonds, Rank: types.RankTwo})
	if !ok {
		t.Fatal("Diamonds-2 not found")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, front)
	if pos.X != 0 || pos.Y != 570 {
		t.Errorf("Diamonds-2 position: got (%v, %v), want (0, 570)", pos.X, pos.Y)
	}

	// 红心 A：第 0 行第 12 列
	ace, _ := deck.Lookup(types.CardID{Suit: types.SuitHearts, Rank: types.RankAce})
	pos, _ = ecs.GetComponent[*components.PositionComponent](em, ace)
	if pos.X != 12*140 || pos.Y != 0 {
		t.Errorf("Hearts-A position: got (%v, %v), want (1680, 0)", pos.X, pos.Y)
	}
}

// TestBuildDeck_FrontOwnsBack 测试正面拥有背面，背面初始隐藏且位于正面之下
func TestBuildDeck_FrontOwnsBack(t *testing.T) {
	em, deck := buildDefaultDeck(t)

	backs := make(map[ecs.EntityID]bool)
	for _, front := range deck.Cards() {
		card, _ := ecs.GetComponent[*components.CardComponent](em, front)
		if backs[card.Back] {
			t.Fatalf("back %d shared by more than one front", card.Back)
		}
		backs[card.Back] = true

		// 背面先创建
		if card.Back >= front {
			t.Errorf("back %d should be created before front %d", card.Back, front)
		}
		if !ecs.HasComponent[*components.CardBackComponent](em, card.Back) {
			t.Errorf("entity %d missing CardBackComponent", card.Back)
		}

		frontVis, _ := ecs.GetComponent[*components.VisibilityComponent](em, front)
		backVis, _ := ecs.GetComponent[*components.VisibilityComponent](em, card.Back)
		if !frontVis.Visible || backVis.Visible {
			t.Errorf("%s: initial visibility front=%v back=%v", card.ID, frontVis.Visible, backVis.Visible)
		}

		frontPos, _ := ecs.GetComponent[*components.PositionComponent](em, front)
		backPos, _ := ecs.GetComponent[*components.PositionComponent](em, card.Back)
		if backPos.Z >= frontPos.Z {
			t.Errorf("%s: back Z %v should be below front Z %v", card.ID, backPos.Z, frontPos.Z)
		}

		if owner, ok := deck.FrontOf(card.Back); !ok || owner != front {
			t.Errorf("FrontOf(back %d) = %d, %v; want %d", card.Back, owner, ok, front)
		}
		if owner, ok := deck.FrontOf(front); !ok || owner != front {
			t.Errorf("FrontOf(front %d) = %d, %v", front, owner, ok)
		}
	}
	if len(backs) != types.DeckSize {
		t.Errorf("Expected %d backs, got %d", types.DeckSize, len(backs))
	}
}

// TestBuildDeck_AssetKeys 测试请求的资源键
func TestBuildDeck_AssetKeys(t *testing.T) {
	loader := &fakeLoader{}
	em := ecs.NewEntityManager()
	if _, err := BuildDeck(em, loader, DefaultDeckOptions(), types.DefaultSuits(), types.DefaultRanks()); err != nil {
		t.Fatal(err)
	}

	if len(loader.requested) != types.DeckSize+1 {
		t.Fatalf("Expected %d loads, got %d", types.DeckSize+1, len(loader.requested))
	}
	if loader.requested[0] != "cards/cardBack_blue2.png" {
		t.Errorf("first request should be the back, got %q", loader.requested[0])
	}
	if loader.requested[1] != "cards/cardHearts2.png" {
		t.Errorf("second request: got %q", loader.requested[1])
	}
}

// TestBuildDeck_MissingAssetStrict 测试严格模式下缺图：报错且不创建实体
func TestBuildDeck_MissingAssetStrict(t *testing.T) {
	loader := &fakeLoader{missing: map[string]bool{"cards/cardSpades10.png": true}}
	em := ecs.NewEntityManager()

	deck, err := BuildDeck(em, loader, DefaultDeckOptions(), types.DefaultSuits(), types.DefaultRanks())
	if !errors.Is(err, game.ErrAssetMissing) {
		t.Fatalf("Expected ErrAssetMissing, got %v", err)
	}
	if deck != nil {
		t.Error("Strict mode must not return a partial deck")
	}
	if em.Count() != 0 {
		t.Errorf("Strict mode must not create entities, got %d", em.Count())
	}
}

// TestBuildDeck_MissingAssetPlaceholder 测试占位模式：完整的牌阵 + 错误
func TestBuildDeck_MissingAssetPlaceholder(t *testing.T) {
	loader := &fakeLoader{missing: map[string]bool{
		"cards/cardSpades10.png":   true,
		"cards/cardBack_blue2.png": true,
	}}
	opts := DefaultDeckOptions()
	opts.AllowPlaceholders = true
	em := ecs.NewEntityManager()

	deck, err := BuildDeck(em, loader, opts, types.DefaultSuits(), types.DefaultRanks())
	if !errors.Is(err, game.ErrAssetMissing) {
		t.Fatalf("Expected ErrAssetMissing, got %v", err)
	}
	if deck == nil || deck.Len() != types.DeckSize {
		t.Fatal("Placeholder mode should still build the full deck")
	}
}

// TestBuildDeck_InvalidCatalog 测试非法的花色/点数序列
func TestBuildDeck_InvalidCatalog(t *testing.T) {
	em := ecs.NewEntityManager()
	_, err := BuildDeck(em, &fakeLoader{}, DefaultDeckOptions(), types.DefaultSuits()[:2], types.DefaultRanks())
	if !errors.Is(err, types.ErrInvalidCatalog) {
		t.Errorf("Expected ErrInvalidCatalog, got %v", err)
	}
	if em.Count() != 0 {
		t.Error("No entities should be created for an invalid catalog")
	}
}

// TestBuildDeck_RotationTargets 测试只有指定的牌参与连续旋转
func TestBuildDeck_RotationTargets(t *testing.T) {
	target := types.CardID{Suit: types.SuitDiamonds, Rank: types.RankTwo}
	opts := DefaultDeckOptions()
	opts.RotationTargets = []types.CardID{target}
	em := ecs.NewEntityManager()

	deck, err := BuildDeck(em, &fakeLoader{}, opts, types.DefaultSuits(), types.DefaultRanks())
	if err != nil {
		t.Fatal(err)
	}

	spinning := 0
	for _, front := range deck.Cards() {
		o, _ := ecs.GetComponent[*components.OrientationComponent](em, front)
		if o.Spinning {
			spinning++
			card, _ := ecs.GetComponent[*components.CardComponent](em, front)
			if card.ID != target {
				t.Errorf("unexpected spinning card %s", card.ID)
			}
		}
	}
	if spinning != 1 {
		t.Errorf("Expected exactly 1 spinning card, got %d", spinning)
	}
}

// TestDeckBounds 测试牌阵包围盒与中心
func TestDeckBounds(t *testing.T) {
	_, deck := buildDefaultDeck(t)

	minX, minY, maxX, maxY := deck.Bounds()
	if minX != 0 || minY != 0 || maxX != 12*140+140 || maxY != 3*190+190 {
		t.Errorf("Bounds = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
	cx, cy := deck.Center()
	if cx != 910 || cy != 380 {
		t.Errorf("Center = (%v, %v), want (910, 380)", cx, cy)
	}

	grid := deck.Grid()
	if grid.Rows != 4 || grid.Columns != 13 {
		t.Errorf("Grid = %dx%d, want 4x13", grid.Rows, grid.Columns)
	}
	if row, col, ok := grid.WorldToCell(70, 665); !ok || row != 3 || col != 0 {
		t.Errorf("WorldToCell(70, 665) = (%d, %d, %v), want Diamonds-2 cell (3, 0)", row, col, ok)
	}
}
