package remote

import (
	"context"
	"encoding/base64"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

const classifyPath = "/classify"

type Classifier struct {
	Client Client
}

var _ ports.Classifier = Classifier{}

type wireBBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type wireDetection struct {
	Tile       string   `json:"tile"`
	Confidence float64  `json:"confidence"`
	BBox       wireBBox `json:"bbox"`
}

type wireDeck struct {
	Detections []wireDetection `json:"detections"`
}

type classifyRequest struct {
	Image  string       `json:"image"`
	Format string       `json:"format"`
	Prior  [][]wireDeck `json:"prior"`
}

type classifyResponse struct {
	ClassifiedDecks []wireDeck `json:"classified_decks"`
}

func (c Classifier) Classify(ctx context.Context, image domain.Image, prior [][]domain.ClassifiedDeck) ([]domain.ClassifiedDeck, error) {
	request := classifyRequest{
		Image:  base64.StdEncoding.EncodeToString(image.Data),
		Format: image.Format,
		Prior:  make([][]wireDeck, 0, len(prior)),
	}
	for _, frame := range prior {
		request.Prior = append(request.Prior, toWireDecks(frame))
	}

	var response classifyResponse
	if err := c.Client.postJSON(ctx, classifyPath, request, &response); err != nil {
		return nil, err
	}

	return fromWireDecks(response.ClassifiedDecks), nil
}

func toWireDecks(decks []domain.ClassifiedDeck) []wireDeck {
	out := make([]wireDeck, 0, len(decks))
	for _, deck := range decks {
		wire := wireDeck{Detections: make([]wireDetection, 0, len(deck.Detections))}
		for _, d := range deck.Detections {
			wire.Detections = append(wire.Detections, wireDetection{
				Tile:       d.Tile,
				Confidence: d.Confidence,
				BBox:       wireBBox{X1: d.BBox.X1, Y1: d.BBox.Y1, X2: d.BBox.X2, Y2: d.BBox.Y2},
			})
		}
		out = append(out, wire)
	}
	return out
}

func fromWireDecks(decks []wireDeck) []domain.ClassifiedDeck {
	out := make([]domain.ClassifiedDeck, 0, len(decks))
	for _, wire := range decks {
		deck := domain.ClassifiedDeck{Detections: make([]domain.Detection, 0, len(wire.Detections))}
		for _, d := range wire.Detections {
			deck.Detections = append(deck.Detections, domain.Detection{
				Tile:       d.Tile,
				Confidence: d.Confidence,
				BBox:       domain.BBox{X1: d.BBox.X1, Y1: d.BBox.Y1, X2: d.BBox.X2, Y2: d.BBox.Y2},
			})
		}
		out = append(out, deck)
	}
	return out
}
