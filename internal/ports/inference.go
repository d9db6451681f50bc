package ports

import (
	"context"

	"github.com/bnema/twmj/internal/domain"
)

// SlotPool gates access to the inference backend. Acquire blocks until a slot
// is free or ctx is done; the returned release func must be called exactly
// once, later calls are no-ops.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), err error)
}

type ImageDecoder interface {
	Decode(data []byte) (domain.Image, error)
}

// Classifier identifies tiles in an image. prior carries the results of earlier
// frames of the same scan session and is empty for single-shot requests.
type Classifier interface {
	Classify(ctx context.Context, image domain.Image, prior [][]domain.ClassifiedDeck) ([]domain.ClassifiedDeck, error)
}
