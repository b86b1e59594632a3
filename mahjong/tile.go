package mahjong

// EColor 花色
type EColor int8

const (
	ColorUndefined EColor = iota - 1
	ColorCharacter        // 萬
	ColorDot              // 筒
	ColorBamboo           // 索
	ColorHonor            // 字牌
	ColorEnd
)

// Honor 字牌种类
type Honor int8

const (
	HonorNone  Honor = iota
	HonorEast        // 東
	HonorSouth       // 南
	HonorWest        // 西
	HonorNorth       // 北
	HonorRed         // 中
	HonorGreen       // 發
	HonorWhite       // 白
)

const (
	TileCount  = 34 // 牌种数
	RankCount  = 9
	HonorCount = 7
	MeldCount  = 4
	HandSize   = 13
	WinSize    = HandSize + 1
)

// PointCountByColor 每种花色的点数
var PointCountByColor = [ColorEnd]int{RankCount, RankCount, RankCount, HonorCount}

// Tile 数牌(萬/筒/索, 点数1..9)或字牌(ColorHonor, 点数为 Honor)，零值为 TileNull
type Tile struct {
	color EColor
	point int8
}

var TileNull = Tile{}

var allTiles = func() [TileCount]Tile {
	var tiles [TileCount]Tile
	for i := range tiles {
		tiles[i], _ = TileFromID(i + 1)
	}
	return tiles
}()

// MakeTile 点数越界时返回 TileNull
func MakeTile(color EColor, point int) Tile {
	if color < ColorCharacter || color >= ColorEnd {
		return TileNull
	}
	if point < 1 || point > PointCountByColor[color] {
		return TileNull
	}
	return Tile{color: color, point: int8(point)}
}

func HonorTile(h Honor) Tile {
	return MakeTile(ColorHonor, int(h))
}

// TileFromID 1-9 萬, 10-18 筒, 19-27 索, 28-34 東南西北中發白
func TileFromID(id int) (Tile, bool) {
	switch {
	case id >= 1 && id <= 3*RankCount:
		return Tile{color: EColor((id - 1) / RankCount), point: int8((id-1)%RankCount + 1)}, true
	case id > 3*RankCount && id <= TileCount:
		return Tile{color: ColorHonor, point: int8(id - 3*RankCount)}, true
	default:
		return TileNull, false
	}
}

// AllTiles 34种牌，按id排序
func AllTiles() []Tile {
	return append([]Tile(nil), allTiles[:]...)
}

func (t Tile) Color() EColor {
	return t.color
}

func (t Tile) Point() int {
	return int(t.point)
}

// IsValid 是否为34种牌之一，TileNull 和越界的牌均无效
func (t Tile) IsValid() bool {
	if t.color < ColorCharacter || t.color >= ColorEnd {
		return false
	}
	return t.point >= 1 && int(t.point) <= PointCountByColor[t.color]
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.color != ColorHonor
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && t.color == ColorHonor
}

func (t Tile) Honor() Honor {
	if !t.IsHonor() {
		return HonorNone
	}
	return Honor(t.point)
}

// ID 1..34，无效牌为0
func (t Tile) ID() int {
	switch {
	case t.IsSuit():
		return int(t.color)*RankCount + int(t.point)
	case t.IsHonor():
		return 3*RankCount + int(t.point)
	default:
		return 0
	}
}

// CanStartRun 能否作为顺子的第一张
func (t Tile) CanStartRun() bool {
	return t.IsSuit() && t.point <= RankCount-2
}

// Next 同花色下一张
func (t Tile) Next() (Tile, bool) {
	if !t.IsSuit() || int(t.point) == RankCount {
		return TileNull, false
	}
	return Tile{color: t.color, point: t.point + 1}, true
}

func (t Tile) String() string {
	return t.Name()
}
