package service

import (
	"context"
	"errors"

	"github.com/kevin-chtw/tw_ting/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var ErrNilRequest = errors.New("nil request")

type TingReq struct {
	Hand string `json:"hand"`
}

type TingAck struct {
	Count int      `json:"count"`
	Waits []string `json:"waits"`
}

type ParseAck struct {
	Count     int      `json:"count"`
	Tiles     []string `json:"tiles"`
	Discarded int      `json:"discarded"`
}

// Ting 客户端听牌计算服务
type Ting struct {
	component.Base
	opts Options
}

func NewTing(opts Options) *Ting {
	return &Ting{opts: opts}
}

// Calc 计算听牌，空列表表示不听牌或无法解析
func (t *Ting) Calc(ctx context.Context, req *TingReq) (*TingAck, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	hand, waits, err := t.opts.Waits(ctx, req.Hand)
	if err != nil {
		logger.Log.Errorf("calc waits for %q: %v", req.Hand, err)
		return nil, err
	}
	logger.Log.Debugf("hand %q: %d tiles, waits %v", req.Hand, hand.Len(), waits)
	return &TingAck{Count: hand.Len(), Waits: waits}, nil
}

// Parse 返回识别到的牌
func (t *Ting) Parse(ctx context.Context, req *TingReq) (*ParseAck, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	res := mahjong.ParseReport(req.Hand, t.opts.parseOptions()...)
	tiles := res.Hand.Tiles()
	names := make([]string, len(tiles))
	for i, tile := range tiles {
		names[i] = tile.Name()
	}
	return &ParseAck{Count: len(tiles), Tiles: names, Discarded: res.Discarded}, nil
}
