package domain

import (
	"fmt"
	"strings"
	"time"
)

// WinnerTiles maps a tile name ("m1", "east", "f2", ...) to how many of that
// tile the winning hand holds.
type WinnerTiles map[string]int

func (w WinnerTiles) Total() int {
	total := 0
	for _, count := range w {
		total += count
	}
	return total
}

type Seat int

const (
	SeatEast Seat = iota + 1
	SeatSouth
	SeatWest
	SeatNorth
)

var seatNames = [...]string{"", "east", "south", "west", "north"}

func (s Seat) Valid() bool {
	return s >= SeatEast && s <= SeatNorth
}

func (s Seat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("seat(%d)", int(s))
	}
	return seatNames[s]
}

// ParseSeat accepts a wind name or its 1-based position.
func ParseSeat(raw string) (Seat, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range seatNames {
		if i > 0 && (value == name || value == fmt.Sprint(i)) {
			return Seat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown seat %q", ErrValidation, raw)
}

// ScoreParams are the round parameters the point counter needs besides the
// hand itself.
type ScoreParams struct {
	WinnerSeat  Seat
	CurrentWind Seat
	WinningTile string
	SelfDrawn   bool
	DoorClear   bool
	BaseValue   int
	Multiplier  int
	UpdatedAt   time.Time
}

func DefaultScoreParams() ScoreParams {
	return ScoreParams{
		WinnerSeat:  SeatEast,
		CurrentWind: SeatEast,
		SelfDrawn:   true,
		DoorClear:   true,
		BaseValue:   0,
		Multiplier:  1,
	}
}

type Score struct {
	Count                int
	Logs                 []string
	WinningDeckOrganized map[string]any
}
