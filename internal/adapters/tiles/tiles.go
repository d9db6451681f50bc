// Package tiles knows the Taiwanese mahjong tile set and checks that a hand is
// structurally possible before it is sent to the scoring engine.
package tiles

import (
	"fmt"
	"slices"
	"strconv"
)

const (
	// HandSize is the number of non-flower tiles in a completed hand without kongs.
	HandSize = 17
	// MaxKongs is the most kongs a 17-tile hand can declare.
	MaxKongs = 5

	maxCopies       = 4
	maxFlowerCopies = 1
)

var (
	suits   = []string{"m", "t", "s"}
	winds   = []string{"east", "south", "west", "north"}
	dragons = []string{"zhong", "fa", "bak"}
)

type Kind int

const (
	KindUnknown Kind = iota
	KindSuit
	KindWind
	KindDragon
	KindFlower
)

var known = buildKnown()

func buildKnown() map[string]Kind {
	tiles := make(map[string]Kind, 50)
	for _, suit := range suits {
		for rank := 1; rank <= 9; rank++ {
			tiles[suit+strconv.Itoa(rank)] = KindSuit
		}
	}
	for _, wind := range winds {
		tiles[wind] = KindWind
	}
	for _, dragon := range dragons {
		tiles[dragon] = KindDragon
	}
	for rank := 1; rank <= 4; rank++ {
		tiles[fmt.Sprintf("f%d", rank)] = KindFlower
		tiles[fmt.Sprintf("ff%d", rank)] = KindFlower
	}
	return tiles
}

func KindOf(tile string) Kind {
	return known[tile]
}

func IsKnown(tile string) bool {
	return KindOf(tile) != KindUnknown
}

// All returns every tile name in display order: suits, winds, dragons, flowers.
func All() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if ka, kb := KindOf(a), KindOf(b); ka != kb {
			return int(ka) - int(kb)
		}
		return compareWithinKind(a, b)
	})
	return names
}

func compareWithinKind(a, b string) int {
	ia, ib := displayIndex(a), displayIndex(b)
	if ia != ib {
		return ia - ib
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func displayIndex(tile string) int {
	if i := slices.Index(winds, tile); i >= 0 {
		return i
	}
	if i := slices.Index(dragons, tile); i >= 0 {
		return i
	}
	for i, suit := range suits {
		if len(tile) == 2 && tile[:1] == suit {
			return i*10 + int(tile[1]-'0')
		}
	}
	return 0
}
