package types

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrInvalidCatalog 花色/点数序列不能构成完整的 52 张牌目录
var ErrInvalidCatalog = errors.New("invalid card catalog")

// DeckSize 一副标准牌的张数
const DeckSize = SuitCount * RankCount

// 资源键模板中的占位符
const (
	SuitPlaceholder = "{suit}"
	RankPlaceholder = "{rank}"
)

// CardID 唯一标识一张牌（花色 + 点数）
type CardID struct {
	Suit Suit
	Rank Rank
}

// String 返回 "Diamonds-2" 形式的名称
func (c CardID) String() string {
	return c.Suit.String() + "-" + c.Rank.Symbol()
}

// ParseCardID 解析 "Diamonds-2" 形式的名称
func ParseCardID(name string) (CardID, error) {
	suitName, rankSymbol, ok := strings.Cut(name, "-")
	if !ok {
		return CardID{}, fmt.Errorf("card name %q: expected <suit>-<rank>", name)
	}
	suit, err := ParseSuit(suitName)
	if err != nil {
		return CardID{}, fmt.Errorf("card name %q: %w", name, err)
	}
	rank, err := ParseRank(rankSymbol)
	if err != nil {
		return CardID{}, fmt.Errorf("card name %q: %w", name, err)
	}
	return CardID{Suit: suit, Rank: rank}, nil
}

// Catalog 按行优先（花色外层、点数内层）枚举所有牌
//
// 要求 suits 恰好包含 4 个互不相同的花色、ranks 恰好包含 13 个互不相同的点数，
// 否则返回 ErrInvalidCatalog。
func Catalog(suits []Suit, ranks []Rank) ([]CardID, error) {
	if err := validateSequence(suits, SuitCount, "suit"); err != nil {
		return nil, err
	}
	if err := validateSequence(ranks, RankCount, "rank"); err != nil {
		return nil, err
	}

	ids := make([]CardID, 0, DeckSize)
	for _, s := range suits {
		for _, r := range ranks {
			ids = append(ids, CardID{Suit: s, Rank: r})
		}
	}
	return ids, nil
}

type validatable interface {
	comparable
	Valid() bool
	String() string
}

func validateSequence[T validatable](seq []T, want int, what string) error {
	if len(seq) != want {
		return fmt.Errorf("%w: need %d %ss, got %d", ErrInvalidCatalog, want, what, len(seq))
	}
	for i, v := range seq {
		if !v.Valid() {
			return fmt.Errorf("%w: %s #%d is out of range", ErrInvalidCatalog, what, i)
		}
		if slices.Contains(seq[:i], v) {
			return fmt.Errorf("%w: duplicate %s %s", ErrInvalidCatalog, what, v)
		}
	}
	return nil
}

// FaceImageKey 根据模板生成正面图片的资源键
//
//	FaceImageKey("cards/card{suit}{rank}.png", CardID{SuitDiamonds, RankTwo})
//	// => "cards/cardDiamonds2.png"
func FaceImageKey(template string, id CardID) string {
	key := strings.ReplaceAll(template, SuitPlaceholder, id.Suit.String())
	return strings.ReplaceAll(key, RankPlaceholder, id.Rank.Symbol())
}
