package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_ting/mahjong"
)

func Test_TileNameRoundTrip(t *testing.T) {
	for id := 1; id <= mahjong.TileCount; id++ {
		name := mahjong.TileName(id)
		got, ok := mahjong.TileID(name)
		if !ok || got != id {
			t.Errorf("TileID(TileName(%d)=%q) = %d, %v", id, name, got, ok)
		}
	}
}

func Test_TileName(t *testing.T) {
	cases := map[int]string{
		1:  "1萬",
		9:  "9萬",
		10: "1筒",
		18: "9筒",
		19: "1索",
		27: "9索",
		28: "東",
		29: "南",
		30: "西",
		31: "北",
		32: "中",
		33: "發",
		34: "白",
		0:  "",
		35: "",
		-1: "",
	}
	for id, want := range cases {
		if got := mahjong.TileName(id); got != want {
			t.Errorf("TileName(%d) = %q, want %q", id, got, want)
		}
	}
}

func Test_TileIDRejects(t *testing.T) {
	for _, name := range []string{"", "萬", "0萬", "10萬", "11萬", " 1萬", "1萬 ", "1萬2萬", "东", "1万", "x", "東東"} {
		if id, ok := mahjong.TileID(name); ok {
			t.Errorf("TileID(%q) = %d, want rejection", name, id)
		}
	}
}

func Test_TileVariant(t *testing.T) {
	seven := mahjong.MakeTile(mahjong.ColorBamboo, 7)
	if !seven.CanStartRun() {
		t.Errorf("%s should start a run", seven)
	}
	if eight := mahjong.MakeTile(mahjong.ColorBamboo, 8); eight.CanStartRun() {
		t.Errorf("%s should not start a run", eight)
	}
	east := mahjong.HonorTile(mahjong.HonorEast)
	if east.CanStartRun() || !east.IsHonor() || east.IsSuit() {
		t.Errorf("%s: honor predicates wrong", east)
	}
	if _, ok := east.Next(); ok {
		t.Errorf("%s should have no next tile", east)
	}
	if next, ok := seven.Next(); !ok || next.Name() != "8索" {
		t.Errorf("Next(%s) = %s, %v", seven, next, ok)
	}
	if _, ok := mahjong.MakeTile(mahjong.ColorDot, 9).Next(); ok {
		t.Errorf("9筒 should have no next tile")
	}
	if mahjong.MakeTile(mahjong.ColorDot, 10).IsValid() || mahjong.MakeTile(mahjong.ColorHonor, 8).IsValid() {
		t.Errorf("out of range tiles should be invalid")
	}
	if mahjong.TileNull.IsValid() || mahjong.TileNull.ID() != 0 {
		t.Errorf("TileNull should be invalid")
	}
	null := mahjong.TileNull
	if null.IsSuit() || null.IsHonor() || null.CanStartRun() || null.Name() != "" {
		t.Errorf("TileNull predicates: suit=%v honor=%v run=%v name=%q",
			null.IsSuit(), null.IsHonor(), null.CanStartRun(), null.Name())
	}
	if null.Honor() != mahjong.HonorNone || east.Honor() != mahjong.HonorEast {
		t.Errorf("Honor(): null=%v east=%v", null.Honor(), east.Honor())
	}
	if _, ok := null.Next(); ok {
		t.Errorf("TileNull should have no next tile")
	}

	all := mahjong.AllTiles()
	if len(all) != mahjong.TileCount {
		t.Fatalf("AllTiles() has %d tiles", len(all))
	}
	for i, tile := range all {
		if tile.ID() != i+1 {
			t.Errorf("AllTiles()[%d].ID() = %d", i, tile.ID())
		}
	}
}
