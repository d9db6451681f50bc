package application

import (
	"context"

	"github.com/bnema/twmj/internal/ports"
)

type ClassifyService struct {
	inference inference
}

func NewClassifyService(decoder ports.ImageDecoder, pool ports.SlotPool, classifier ports.Classifier, telemetry ports.Telemetry) *ClassifyService {
	if telemetry == nil {
		telemetry = ports.NopTelemetry{}
	}

	return &ClassifyService{
		inference: inference{decoder: decoder, pool: pool, classifier: classifier, telemetry: telemetry},
	}
}

// ClassifyOnce returns the raw classifier output for one image, with no
// accumulated context.
func (s *ClassifyService) ClassifyOnce(ctx context.Context, cmd ClassifyCommand) (ClassifyResult, error) {
	image, decks, err := s.inference.run(ctx, "classify", cmd.Data, nil)
	if err != nil {
		return ClassifyResult{}, err
	}

	return ClassifyResult{
		Filename: cmd.Filename,
		Size:     len(cmd.Data),
		Image:    image,
		Decks:    decks,
	}, nil
}
