package systems

import (
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/ecs"
	"github.com/gonewx/cardtable/pkg/entities"
	"github.com/gonewx/cardtable/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// nullLoader 所有图片都返回 nil 句柄
type nullLoader struct{}

func (nullLoader) LoadImage(string) (*ebiten.Image, error) { return nil, nil }
func (nullLoader) Placeholder() *ebiten.Image              { return nil }

var diamondsTwo = types.CardID{Suit: types.SuitDiamonds, Rank: types.RankTwo}

// buildTestDeck 用默认布局构建一副牌
func buildTestDeck(t *testing.T, mode components.DriveMode, targets ...types.CardID) (*ecs.EntityManager, *entities.Deck) {
	t.Helper()
	em := ecs.NewEntityManager()
	opts := entities.DefaultDeckOptions()
	opts.Mode = mode
	opts.RotationTargets = targets

	deck, err := entities.BuildDeck(em, nullLoader{}, opts, types.DefaultSuits(), types.DefaultRanks())
	if err != nil {
		t.Fatalf("BuildDeck failed: %v", err)
	}
	return em, deck
}

// mustLookup 查找正面实体
func mustLookup(t *testing.T, deck *entities.Deck, id types.CardID) ecs.EntityID {
	t.Helper()
	front, ok := deck.Lookup(id)
	if !ok {
		t.Fatalf("card %s not in deck", id)
	}
	return front
}

// faceVisibility 返回 (正面可见, 背面可见)
func faceVisibility(t *testing.T, em *ecs.EntityManager, front ecs.EntityID) (bool, bool) {
	t.Helper()
	card, ok := ecs.GetComponent[*components.CardComponent](em, front)
	if !ok {
		t.Fatalf("entity %d has no CardComponent", front)
	}
	fv, _ := ecs.GetComponent[*components.VisibilityComponent](em, front)
	bv, _ := ecs.GetComponent[*components.VisibilityComponent](em, card.Back)
	return fv.Visible, bv.Visible
}

// linearSettings 线性缓动的默认参数，便于断言显示角度
func linearSettings() OrientationSettings {
	s := DefaultOrientationSettings()
	s.Easing = nil
	return s
}
