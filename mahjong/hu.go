package mahjong

// EMeldType 面子类型
type EMeldType int

const (
	MeldTypeTriplet EMeldType = iota // 刻子
	MeldTypeRun                      // 顺子
)

// Meld 面子，刻子或以 First 开头的顺子
type Meld struct {
	Type  EMeldType
	First Tile
}

func (m Meld) Tiles() [3]Tile {
	if m.Type == MeldTypeTriplet {
		return [3]Tile{m.First, m.First, m.First}
	}
	second, _ := m.First.Next()
	third, _ := second.Next()
	return [3]Tile{m.First, second, third}
}

// Decomposition 和牌拆解：一个雀头加四组面子
type Decomposition struct {
	Pair  Tile
	Melds [MeldCount]Meld
}

// IsWinningHand 是否和牌，必须恰好14张
func IsWinningHand(h Hand) bool {
	c := h.Counts()
	_, ok := decompose(&c)
	return ok
}

// Decompose 返回找到的第一种拆解
func Decompose(h Hand) (Decomposition, bool) {
	c := h.Counts()
	return decompose(&c)
}

type huSearch struct {
	counts *Counts
	melds  [MeldCount]Meld
	depth  int
}

// decompose restores c before returning.
func decompose(c *Counts) (Decomposition, bool) {
	if c.Len() != WinSize {
		return Decomposition{}, false
	}
	s := &huSearch{counts: c}
	for id := 1; id <= TileCount; id++ {
		if c[id] < 2 {
			continue
		}
		c[id] -= 2
		ok := s.pickMelds()
		c[id] += 2
		if ok {
			pair, _ := TileFromID(id)
			return Decomposition{Pair: pair, Melds: s.melds}, true
		}
	}
	return Decomposition{}, false
}

// pickMelds always consumes the smallest remaining tile, either as a triplet
// or as the bottom of a run.
func (s *huSearch) pickMelds() bool {
	id := s.counts.first()
	if id == 0 {
		return true
	}
	if s.depth == MeldCount {
		return false
	}
	tile, _ := TileFromID(id)

	if s.counts[id] >= 3 {
		s.counts[id] -= 3
		ok := s.push(Meld{Type: MeldTypeTriplet, First: tile})
		s.counts[id] += 3
		if ok {
			return true
		}
	}

	if !tile.CanStartRun() {
		return false
	}
	second, _ := tile.Next()
	third, _ := second.Next()
	id2, id3 := second.ID(), third.ID()
	if s.counts[id2] == 0 || s.counts[id3] == 0 {
		return false
	}
	s.counts[id]--
	s.counts[id2]--
	s.counts[id3]--
	ok := s.push(Meld{Type: MeldTypeRun, First: tile})
	s.counts[id]++
	s.counts[id2]++
	s.counts[id3]++
	return ok
}

func (s *huSearch) push(m Meld) bool {
	s.melds[s.depth] = m
	s.depth++
	if s.pickMelds() {
		return true
	}
	s.depth--
	return false
}
