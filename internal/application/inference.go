package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

// inference decodes and classifies images behind the slot pool. It is the
// only path to the decoder and the classifier in this package, so a full
// decode never runs without a slot held.
type inference struct {
	decoder    ports.ImageDecoder
	pool       ports.SlotPool
	classifier ports.Classifier
	telemetry  ports.Telemetry
}

func (i inference) run(ctx context.Context, caller string, data []byte, prior [][]domain.ClassifiedDeck) (domain.Image, []domain.ClassifiedDeck, error) {
	release, err := i.pool.Acquire(ctx)
	if err != nil {
		return domain.Image{}, nil, fmt.Errorf("acquire inference slot: %w", err)
	}
	defer release()

	image, err := i.decoder.Decode(data)
	if err != nil {
		return domain.Image{}, nil, err
	}

	started := time.Now()
	decks, err := i.classifier.Classify(ctx, image, prior)
	i.telemetry.Inference(caller, time.Since(started), err)
	if err != nil {
		return domain.Image{}, nil, fmt.Errorf("classify image: %w", err)
	}
	if decks == nil {
		decks = []domain.ClassifiedDeck{}
	}

	return image, decks, nil
}
