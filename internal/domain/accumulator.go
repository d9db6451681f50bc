package domain

import (
	"cmp"
	"slices"
)

// Accumulator holds the classification results of every frame received on one
// scan connection. It is not safe for concurrent use; a session owns it.
//
// A positive limit keeps only the most recent limit frames.
type Accumulator struct {
	frames [][]ClassifiedDeck
	limit  int
}

func NewAccumulator(limit int) *Accumulator {
	if limit < 0 {
		limit = 0
	}

	return &Accumulator{limit: limit}
}

func (a *Accumulator) Fold(decks []ClassifiedDeck) {
	a.frames = append(a.frames, CloneDecks(decks))
	if a.limit > 0 && len(a.frames) > a.limit {
		drop := len(a.frames) - a.limit
		clear(a.frames[:drop])
		a.frames = a.frames[drop:]
	}
}

func (a *Accumulator) Len() int {
	return len(a.frames)
}

// Frames returns a copy of the accumulated results, oldest first.
func (a *Accumulator) Frames() [][]ClassifiedDeck {
	frames := make([][]ClassifiedDeck, len(a.frames))
	for i, frame := range a.frames {
		frames[i] = CloneDecks(frame)
	}

	return frames
}

func (a *Accumulator) Stabilized() []ClassifiedDeck {
	return Stabilize(a.frames)
}

type tileVote struct {
	count         int
	confidenceSum float64
	bbox          BBox
}

// Stabilize derives a consensus view from per-frame results. Detections of each
// deck are ordered left to right; every position takes the label with the most
// votes across frames, ties going to the higher summed confidence and then to
// the lexically smaller label. The reported confidence is the mean confidence of
// the winning label and the box is the latest one seen for that label.
func Stabilize(frames [][]ClassifiedDeck) []ClassifiedDeck {
	deckCount := 0
	for _, frame := range frames {
		deckCount = max(deckCount, len(frame))
	}
	if deckCount == 0 {
		return []ClassifiedDeck{}
	}

	stable := make([]ClassifiedDeck, deckCount)
	for deckIdx := range deckCount {
		stable[deckIdx] = stabilizeDeck(frames, deckIdx)
	}

	return stable
}

func stabilizeDeck(frames [][]ClassifiedDeck, deckIdx int) ClassifiedDeck {
	var positions []map[string]*tileVote

	for _, frame := range frames {
		if deckIdx >= len(frame) {
			continue
		}

		ordered := orderedDetections(frame[deckIdx].Detections)
		for pos, det := range ordered {
			if pos >= len(positions) {
				positions = append(positions, map[string]*tileVote{})
			}
			vote, ok := positions[pos][det.Tile]
			if !ok {
				vote = &tileVote{}
				positions[pos][det.Tile] = vote
			}
			vote.count++
			vote.confidenceSum += det.Confidence
			vote.bbox = det.BBox
		}
	}

	detections := make([]Detection, 0, len(positions))
	for _, votes := range positions {
		detections = append(detections, winningDetection(votes))
	}

	return ClassifiedDeck{Detections: detections}
}

func orderedDetections(detections []Detection) []Detection {
	ordered := slices.Clone(detections)
	slices.SortStableFunc(ordered, func(a, b Detection) int {
		if c := cmp.Compare(a.BBox.X1, b.BBox.X1); c != 0 {
			return c
		}
		return cmp.Compare(a.BBox.Y1, b.BBox.Y1)
	})

	return ordered
}

func winningDetection(votes map[string]*tileVote) Detection {
	var (
		bestTile string
		best     *tileVote
	)

	for tile, vote := range votes {
		if best == nil || betterVote(tile, vote, bestTile, best) {
			bestTile = tile
			best = vote
		}
	}

	return Detection{
		Tile:       bestTile,
		Confidence: best.confidenceSum / float64(best.count),
		BBox:       best.bbox,
	}
}

func betterVote(tile string, vote *tileVote, bestTile string, best *tileVote) bool {
	if vote.count != best.count {
		return vote.count > best.count
	}
	if vote.confidenceSum != best.confidenceSum {
		return vote.confidenceSum > best.confidenceSum
	}

	return tile < bestTile
}
