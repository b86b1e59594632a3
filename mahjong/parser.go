package mahjong

import (
	"unicode/utf8"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type parseOptions struct {
	simplified bool
}

// ParseOption 解析选项
type ParseOption func(*parseOptions)

// WithSimplified 同时识别简体 万 条 东 发
func WithSimplified() ParseOption {
	return func(o *parseOptions) {
		o.simplified = true
	}
}

// ParseResult 解析结果，Discarded 为丢弃的数字个数
type ParseResult struct {
	Hand      Hand
	Discarded int
}

// ParseHand 解析手牌，不会失败，无法识别的字符直接跳过。
// 连续数字由其后第一个字符决定：花色标记则全部成牌，否则数字丢弃且该字符单独再读，
// 所以 "12東" 解析为 東。
func ParseHand(text string, opts ...ParseOption) Hand {
	return ParseReport(text, opts...).Hand
}

// ParseReport 同 ParseHand，并统计丢弃的数字
func ParseReport(text string, opts ...ParseOption) ParseResult {
	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var res ParseResult
	if !utf8.ValidString(text) {
		logger.Log.Debugf("hand text is not valid utf-8: %q", text)
		return res
	}

	runes := []rune(text)
	tiles := make([]Tile, 0, WinSize)
	digits := make([]int, 0, RankCount)
	for pos := 0; pos < len(runes); {
		if isRankDigit(runes[pos]) {
			digits = digits[:0]
			for pos < len(runes) && isRankDigit(runes[pos]) {
				digits = append(digits, int(runes[pos]-'0'))
				pos++
			}

			color, ok := ColorUndefined, false
			if pos < len(runes) {
				color, ok = o.suitColor(runes[pos])
			}
			if !ok {
				res.Discarded += len(digits)
				continue
			}
			for _, d := range digits {
				tiles = append(tiles, MakeTile(color, d))
			}
			pos++
			continue
		}

		if h, ok := o.honor(runes[pos]); ok {
			tiles = append(tiles, HonorTile(h))
		}
		pos++
	}

	if res.Discarded > 0 {
		logger.Log.Debugf("dropped %d digits without suit marker in %q", res.Discarded, text)
	}
	res.Hand = Hand{tiles: tiles}
	return res
}

func (o *parseOptions) suitColor(r rune) (EColor, bool) {
	if c, ok := markerToColor[r]; ok {
		return c, true
	}
	if o.simplified {
		if c, ok := simplifiedMarkers[r]; ok {
			return c, true
		}
	}
	return ColorUndefined, false
}

func (o *parseOptions) honor(r rune) (Honor, bool) {
	if h, ok := glyphToHonor[r]; ok {
		return h, true
	}
	if o.simplified {
		if h, ok := simplifiedHonors[r]; ok {
			return h, true
		}
	}
	return HonorNone, false
}
