package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNKNOWN"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DST     Position = "DST"
)

// AllPositions lists every position the draft model tracks, in the
// order reports display them.
var AllPositions = []Position{POS_QB, POS_RB, POS_WR, POS_TE, POS_K, POS_DST}

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k":
		return POS_K
	case "dst", "d/st":
		return POS_DST
	default:
		return POS_UNKNOWN
	}
}

// ESPN lineup-slot ids that map to a primary position. Slots not in
// this table (FLEX, bench, IR, etc.) never determine a position.
var slotPositions = map[int]Position{
	0:  POS_QB,
	2:  POS_RB,
	4:  POS_WR,
	6:  POS_TE,
	17: POS_K,
	16: POS_DST,
}

// PositionFromSlots returns the position for the first eligible slot
// that maps to a primary position, or POS_UNKNOWN when none do.
func PositionFromSlots(eligibleSlots []int) Position {
	for _, slot := range eligibleSlots {
		if pos, ok := slotPositions[slot]; ok {
			return pos
		}
	}
	return POS_UNKNOWN
}
