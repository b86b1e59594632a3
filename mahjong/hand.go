package mahjong

import (
	"slices"
)

// Counts 按牌id计数，下标0不用
type Counts [TileCount + 1]int

// Len 总张数
func (c *Counts) Len() int {
	n := 0
	for _, cnt := range c {
		n += cnt
	}
	return n
}

// first returns the smallest id still present, or 0 when empty.
func (c *Counts) first() int {
	for id := 1; id <= TileCount; id++ {
		if c[id] > 0 {
			return id
		}
	}
	return 0
}

// Hand 手牌，构造后不可变，零值为空手牌
type Hand struct {
	tiles []Tile
}

// NewHand 构造手牌，跳过无效牌
func NewHand(tiles ...Tile) Hand {
	valid := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t.IsValid() {
			valid = append(valid, t)
		}
	}
	return Hand{tiles: valid}
}

// HandFromIDs 按牌id构造手牌，跳过 1..34 以外的id
func HandFromIDs(ids ...int) Hand {
	tiles := make([]Tile, 0, len(ids))
	for _, id := range ids {
		if t, ok := TileFromID(id); ok {
			tiles = append(tiles, t)
		}
	}
	return Hand{tiles: tiles}
}

func (h Hand) Len() int {
	return len(h.tiles)
}

func (h Hand) IsEmpty() bool {
	return len(h.tiles) == 0
}

// Tiles 按输入顺序返回副本
func (h Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h Hand) IDs() []int {
	ids := make([]int, len(h.tiles))
	for i, t := range h.tiles {
		ids[i] = t.ID()
	}
	return ids
}

// Sorted 按牌id升序
func (h Hand) Sorted() []Tile {
	tiles := slices.Clone(h.tiles)
	slices.SortFunc(tiles, func(a, b Tile) int {
		return a.ID() - b.ID()
	})
	return tiles
}

func (h Hand) Counts() Counts {
	var c Counts
	for _, t := range h.tiles {
		c[t.ID()]++
	}
	return c
}

// With 返回多一张 t 的新手牌，h 不变
func (h Hand) With(t Tile) Hand {
	if !t.IsValid() {
		return h
	}
	tiles := make([]Tile, len(h.tiles), len(h.tiles)+1)
	copy(tiles, h.tiles)
	return Hand{tiles: append(tiles, t)}
}

func (h Hand) String() string {
	return TilesName(h.Sorted())
}
