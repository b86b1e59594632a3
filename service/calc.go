package service

import (
	"context"

	"github.com/kevin-chtw/tw_ting/mahjong"
)

// Options 服务计算选项，取自 scan 配置
type Options struct {
	Parallel   bool
	Simplified bool
}

func (o Options) parseOptions() []mahjong.ParseOption {
	if o.Simplified {
		return []mahjong.ParseOption{mahjong.WithSimplified()}
	}
	return nil
}

// Waits 解析并计算听牌，按配置选择顺序或并发扫描
func (o Options) Waits(ctx context.Context, text string) (mahjong.Hand, []string, error) {
	hand := mahjong.ParseHand(text, o.parseOptions()...)
	if !o.Parallel {
		return hand, mahjong.Names(mahjong.Waits(hand)), nil
	}
	tiles, err := mahjong.WaitsParallel(ctx, hand)
	if err != nil {
		return hand, nil, err
	}
	return hand, mahjong.Names(tiles), nil
}
