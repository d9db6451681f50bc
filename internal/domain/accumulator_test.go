package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func det(tile string, confidence, x1 float64) Detection {
	return Detection{Tile: tile, Confidence: confidence, BBox: BBox{X1: x1, Y1: 0, X2: x1 + 10, Y2: 20}}
}

func deck(detections ...Detection) []ClassifiedDeck {
	return []ClassifiedDeck{{Detections: detections}}
}

func TestStabilizeMajorityPerPosition(t *testing.T) {
	frames := [][]ClassifiedDeck{
		deck(det("m1", 0.9, 0), det("m2", 0.8, 10), det("m3", 0.7, 20)),
		deck(det("m1", 0.7, 0), det("t2", 0.4, 10), det("m3", 0.9, 20)),
		deck(det("m1", 0.8, 1), det("m2", 0.6, 11), det("s3", 0.9, 21)),
	}

	got := Stabilize(frames)

	want := []ClassifiedDeck{{Detections: []Detection{
		{Tile: "m1", Confidence: 0.8, BBox: BBox{X1: 1, X2: 11, Y2: 20}},
		{Tile: "m2", Confidence: 0.7, BBox: BBox{X1: 11, X2: 21, Y2: 20}},
		{Tile: "m3", Confidence: 0.8, BBox: BBox{X1: 20, X2: 30, Y2: 20}},
	}}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Stabilize() mismatch (-want +got):\n%s", diff)
	}
}

func TestStabilizeOrdersDetectionsLeftToRight(t *testing.T) {
	frames := [][]ClassifiedDeck{
		deck(det("m3", 0.9, 20), det("m1", 0.9, 0), det("m2", 0.9, 10)),
	}

	got := Stabilize(frames)

	require.Len(t, got, 1)
	tiles := make([]string, 0, len(got[0].Detections))
	for _, d := range got[0].Detections {
		tiles = append(tiles, d.Tile)
	}
	assert.Equal(t, []string{"m1", "m2", "m3"}, tiles)
}

func TestStabilizeTieBreaksOnConfidenceThenLabel(t *testing.T) {
	byConfidence := Stabilize([][]ClassifiedDeck{
		deck(det("east", 0.4, 0)),
		deck(det("west", 0.9, 0)),
	})
	require.Len(t, byConfidence[0].Detections, 1)
	assert.Equal(t, "west", byConfidence[0].Detections[0].Tile)

	byLabel := Stabilize([][]ClassifiedDeck{
		deck(det("west", 0.5, 0)),
		deck(det("east", 0.5, 0)),
	})
	assert.Equal(t, "east", byLabel[0].Detections[0].Tile)
}

func TestStabilizeKeepsExtraDecksAndPositions(t *testing.T) {
	frames := [][]ClassifiedDeck{
		deck(det("m1", 0.9, 0)),
		{
			{Detections: []Detection{det("m1", 0.9, 0), det("m2", 0.9, 10)}},
			{Detections: []Detection{det("f1", 0.5, 0)}},
		},
	}

	got := Stabilize(frames)

	require.Len(t, got, 2)
	assert.Len(t, got[0].Detections, 2)
	assert.Equal(t, "f1", got[1].Detections[0].Tile)
}

func TestStabilizeEmpty(t *testing.T) {
	assert.Empty(t, Stabilize(nil))
	assert.NotNil(t, Stabilize(nil))
	assert.Empty(t, Stabilize([][]ClassifiedDeck{{}}))
}

func TestAccumulatorFoldIsUnboundedByDefault(t *testing.T) {
	acc := NewAccumulator(0)
	for i := 0; i < 50; i++ {
		acc.Fold(deck(det("m1", 0.9, 0)))
	}

	assert.Equal(t, 50, acc.Len())
}

func TestAccumulatorLimitKeepsMostRecentFrames(t *testing.T) {
	acc := NewAccumulator(2)
	acc.Fold(deck(det("m1", 0.9, 0)))
	acc.Fold(deck(det("m2", 0.9, 0)))
	acc.Fold(deck(det("m3", 0.9, 0)))

	frames := acc.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "m2", frames[0][0].Detections[0].Tile)
	assert.Equal(t, "m3", frames[1][0].Detections[0].Tile)
}

func TestAccumulatorFramesAreCopies(t *testing.T) {
	input := deck(det("m1", 0.9, 0))
	acc := NewAccumulator(0)
	acc.Fold(input)

	input[0].Detections[0].Tile = "changed"
	frames := acc.Frames()
	frames[0][0].Detections[0].Tile = "mutated"

	assert.Equal(t, "m1", acc.Frames()[0][0].Detections[0].Tile)
}
