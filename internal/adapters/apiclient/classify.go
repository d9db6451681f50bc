package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnema/twmj/internal/domain"
)

type bboxResponse struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type detectionResponse struct {
	Tile       string       `json:"tile"`
	Confidence float64      `json:"confidence"`
	BBox       bboxResponse `json:"bbox"`
}

type deckResponse struct {
	Detections []detectionResponse `json:"detections"`
}

type classifyResponse struct {
	Filename        string         `json:"filename"`
	Size            int            `json:"size"`
	ClassifiedDecks []deckResponse `json:"classified_decks"`
}

type pointsResponse struct {
	Count                int            `json:"count"`
	Logs                 []string       `json:"logs"`
	WinningDeckOrganized map[string]any `json:"winning_deck_organized"`
}

type Classification struct {
	Filename string
	Size     int
	Decks    []domain.ClassifiedDeck
}

// Classify uploads one image as the raw request body.
func (c Client) Classify(ctx context.Context, filename string, data []byte) (Classification, error) {
	query := url.Values{}
	if filename != "" {
		query.Set("filename", filename)
	}

	var response classifyResponse
	err := c.do(ctx, http.MethodPost, "/classify-hand", query, "application/octet-stream", bytes.NewReader(data), &response)
	if err != nil {
		return Classification{}, fmt.Errorf("classify %s: %w", filename, err)
	}

	return Classification{
		Filename: response.Filename,
		Size:     response.Size,
		Decks:    toDecks(response.ClassifiedDecks),
	}, nil
}

func (c Client) GetPoints(ctx context.Context, tiles domain.WinnerTiles) (domain.Score, error) {
	var response pointsResponse
	if err := c.postJSON(ctx, "/get-points", tiles, &response); err != nil {
		return domain.Score{}, fmt.Errorf("get points: %w", err)
	}

	return domain.Score{
		Count:                response.Count,
		Logs:                 response.Logs,
		WinningDeckOrganized: response.WinningDeckOrganized,
	}, nil
}

func toDecks(raw []deckResponse) []domain.ClassifiedDeck {
	decks := make([]domain.ClassifiedDeck, 0, len(raw))
	for _, deck := range raw {
		detections := make([]domain.Detection, 0, len(deck.Detections))
		for _, d := range deck.Detections {
			detections = append(detections, domain.Detection{
				Tile:       d.Tile,
				Confidence: d.Confidence,
				BBox:       domain.BBox{X1: d.BBox.X1, Y1: d.BBox.Y1, X2: d.BBox.X2, Y2: d.BBox.Y2},
			})
		}
		decks = append(decks, domain.ClassifiedDeck{Detections: detections})
	}
	return decks
}
