package mahjong_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_ting/mahjong"
)

func Test_ParseHand(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		opts      []mahjong.ParseOption
		want      []int
		discarded int
	}{
		{name: "all suits", text: "123萬456筒789索東南西北中發白", want: []int{1, 2, 3, 13, 14, 15, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34}},
		{name: "repeated groups", text: "1萬1萬", want: []int{1, 1}},
		{name: "separators", text: "11萬 22筒, 33索；中中", want: []int{1, 1, 11, 11, 21, 21, 32, 32}},
		{name: "empty", text: "", want: []int{}},
		{name: "no tokens", text: "hello, world", want: []int{}},
		{name: "digits without marker", text: "123", want: []int{}, discarded: 3},
		{name: "digits before honor", text: "12東", want: []int{28}, discarded: 2},
		{name: "zero breaks run", text: "10萬", want: []int{}, discarded: 1},
		{name: "space breaks run", text: "1 2萬", want: []int{2}, discarded: 1},
		{name: "bare marker", text: "萬東", want: []int{28}},
		{name: "invalid utf8", text: "\xff東", want: []int{}},
		{name: "simplified ignored", text: "123万东", want: []int{}, discarded: 3},
		{name: "simplified", text: "123万456条东发", opts: []mahjong.ParseOption{mahjong.WithSimplified()}, want: []int{1, 2, 3, 22, 23, 24, 28, 33}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := mahjong.ParseReport(tc.text, tc.opts...)
			if got := res.Hand.IDs(); !slices.Equal(got, tc.want) {
				t.Errorf("ParseReport(%q) ids = %v, want %v", tc.text, got, tc.want)
			}
			if res.Discarded != tc.discarded {
				t.Errorf("ParseReport(%q) discarded = %d, want %d", tc.text, res.Discarded, tc.discarded)
			}
			if got := mahjong.ParseHand(tc.text, tc.opts...).Len(); got != len(tc.want) {
				t.Errorf("ParseHand(%q).Len() = %d, want %d", tc.text, got, len(tc.want))
			}
		})
	}
}

func Test_HandImmutable(t *testing.T) {
	h := mahjong.ParseHand("123萬")
	tiles := h.Tiles()
	tiles[0] = mahjong.HonorTile(mahjong.HonorWhite)

	h2 := h.With(mahjong.HonorTile(mahjong.HonorEast))
	if h.Len() != 3 || h2.Len() != 4 {
		t.Fatalf("With changed the receiver: %d, %d", h.Len(), h2.Len())
	}
	if h.String() != "1萬, 2萬, 3萬" {
		t.Errorf("hand = %s", h)
	}
	if h2.String() != "1萬, 2萬, 3萬, 東" {
		t.Errorf("hand with 東 = %s", h2)
	}
	if h.With(mahjong.TileNull).Len() != 3 {
		t.Errorf("With(TileNull) should be a no-op")
	}
}
