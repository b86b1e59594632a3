package mahjong

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// 静态表：花色 -> 标记
var colorMarkers = [ColorHonor]rune{
	ColorCharacter: '萬',
	ColorDot:       '筒',
	ColorBamboo:    '索',
}

// 静态表：字牌 -> 字
var honorGlyphs = [HonorCount + 1]rune{
	HonorEast:  '東',
	HonorSouth: '南',
	HonorWest:  '西',
	HonorNorth: '北',
	HonorRed:   '中',
	HonorGreen: '發',
	HonorWhite: '白',
}

var markerToColor = map[rune]EColor{
	'萬': ColorCharacter,
	'筒': ColorDot,
	'索': ColorBamboo,
}

var glyphToHonor = map[rune]Honor{
	'東': HonorEast,
	'南': HonorSouth,
	'西': HonorWest,
	'北': HonorNorth,
	'中': HonorRed,
	'發': HonorGreen,
	'白': HonorWhite,
}

// 简体写法，仅在 WithSimplified 时识别
var simplifiedMarkers = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
}

var simplifiedHonors = map[rune]Honor{
	'东': HonorEast,
	'发': HonorGreen,
}

// Name 牌名，如 "5萬"、"東"，无效牌为空串
func (t Tile) Name() string {
	switch {
	case t.IsSuit():
		return strconv.Itoa(int(t.point)) + string(colorMarkers[t.color])
	case t.IsHonor():
		return string(honorGlyphs[t.Honor()])
	default:
		return ""
	}
}

func TilesName(tiles []Tile) string {
	names := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		names = append(names, tile.Name())
	}
	return strings.Join(names, ", ")
}

// ParseTile 只接受一个规范牌名
func ParseTile(name string) (Tile, bool) {
	if name == "" {
		return TileNull, false
	}

	r, size := utf8.DecodeLastRuneInString(name)
	if size == len(name) {
		if h, ok := glyphToHonor[r]; ok {
			return HonorTile(h), true
		}
		return TileNull, false
	}

	color, ok := markerToColor[r]
	if !ok {
		return TileNull, false
	}
	prefix := name[:len(name)-size]
	if len(prefix) != 1 || !isRankDigit(rune(prefix[0])) {
		return TileNull, false
	}
	return MakeTile(color, int(prefix[0]-'0')), true
}

// TileID 牌名转牌id
func TileID(name string) (int, bool) {
	tile, ok := ParseTile(name)
	if !ok {
		return 0, false
	}
	return tile.ID(), true
}

// TileName 牌id转牌名，越界返回空串
func TileName(id int) string {
	tile, ok := TileFromID(id)
	if !ok {
		return ""
	}
	return tile.Name()
}

func isRankDigit(r rune) bool {
	return r >= '1' && r <= '9'
}
