package mahjong

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ComputeWaits 解析手牌并返回听的牌名，按牌id升序。空手牌或格式错误返回空列表
func ComputeWaits(text string, opts ...ParseOption) []string {
	hand := ParseHand(text, opts...)
	if hand.IsEmpty() {
		return []string{}
	}
	return Names(Waits(hand))
}

// Waits 逐一尝试34种牌作为第14张，返回能和的牌
func Waits(h Hand) []Tile {
	waits := make([]Tile, 0)
	if h.IsEmpty() {
		return waits
	}
	base := h.Counts()
	for _, tile := range allTiles {
		c := base
		c[tile.ID()]++
		if _, ok := decompose(&c); ok {
			waits = append(waits, tile)
		}
	}
	return waits
}

// WaitsParallel 并发版 Waits，每种候选牌一个 goroutine，各自持有计数副本
func WaitsParallel(ctx context.Context, h Hand) ([]Tile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	waits := make([]Tile, 0)
	if h.IsEmpty() {
		return waits, nil
	}
	base := h.Counts()

	var hits [TileCount + 1]bool
	g, ctx := errgroup.WithContext(ctx)
	for _, tile := range allTiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := base
			c[tile.ID()]++
			_, hits[tile.ID()] = decompose(&c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, tile := range allTiles {
		if hits[tile.ID()] {
			waits = append(waits, tile)
		}
	}
	return waits, nil
}

// Names 牌名列表，空输入返回空列表而不是 nil
func Names(tiles []Tile) []string {
	res := make([]string, len(tiles))
	for i, t := range tiles {
		res[i] = t.Name()
	}
	return res
}
