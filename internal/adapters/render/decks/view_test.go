package decks

import (
	"testing"

	"github.com/bnema/twmj/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderDecks(t *testing.T) {
	output := Render("hand.png", []domain.ClassifiedDeck{
		{Detections: []domain.Detection{{Tile: "m1", Confidence: 0.9}, {Tile: "m2", Confidence: 0.7}}},
		{},
	})

	assert.Contains(t, output, "hand.png")
	assert.Contains(t, output, "deck 1: m1 m2 (2 tiles, 80%)")
	assert.Contains(t, output, "deck 2: empty")
}

func TestRenderNoDecks(t *testing.T) {
	assert.Contains(t, Render("frame 3", nil), "no tiles recognised")
}

func TestRenderError(t *testing.T) {
	output := RenderError("frame 2", "decode error: unsupported image format")
	assert.Contains(t, output, "frame 2")
	assert.Contains(t, output, "unsupported image format")
}
