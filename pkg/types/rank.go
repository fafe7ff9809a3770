package types

import (
	"fmt"
	"strings"
)

// Rank 定义扑克牌点数，按 2 < 3 < ... < K < A 排序
type Rank int

const (
	RankTwo Rank = iota
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

// RankCount 点数数量
const RankCount = 13

var rankSymbols = [RankCount]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Value 返回点数的整数值 0..12
// 规范顺序下它同时是布局列号
func (r Rank) Value() int {
	return int(r)
}

// Symbol 返回点数符号（"2".."10", "J", "Q", "K", "A"）
// 资源键使用该符号，例如 "cards/cardSpades10.png"
func (r Rank) Symbol() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r]
}

// String 实现 fmt.Stringer
func (r Rank) String() string {
	return r.Symbol()
}

// Valid 判断点数是否在 2..A 范围内
func (r Rank) Valid() bool {
	return r >= RankTwo && r <= RankAce
}

// DefaultRanks 返回默认点数顺序（列顺序）：2..10, J, Q, K, A
func DefaultRanks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for r := RankTwo; r <= RankAce; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// ParseRank 解析点数符号（不区分大小写）
func ParseRank(symbol string) (Rank, error) {
	for i, s := range rankSymbols {
		if strings.EqualFold(symbol, s) {
			return Rank(i), nil
		}
	}
	return RankTwo, fmt.Errorf("unknown rank %q", symbol)
}
