package application

import (
	"context"
	"fmt"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

type ScoringService struct {
	validator ports.DeckValidator
	counter   ports.PointCounter
	profiles  ports.ScoreProfileRepository
}

// NewScoringService accepts a nil profiles repository, in which case every
// hand is scored with domain.DefaultScoreParams.
func NewScoringService(validator ports.DeckValidator, counter ports.PointCounter, profiles ports.ScoreProfileRepository) *ScoringService {
	return &ScoringService{validator: validator, counter: counter, profiles: profiles}
}

func (s *ScoringService) GetPoints(ctx context.Context, tiles domain.WinnerTiles) (domain.Score, error) {
	if err := s.validator.Validate(ctx, tiles); err != nil {
		return domain.Score{}, err
	}

	params, err := s.Profile(ctx)
	if err != nil {
		return domain.Score{}, err
	}

	score, err := s.counter.Count(ctx, tiles, params)
	if err != nil {
		return domain.Score{}, fmt.Errorf("count points: %w", err)
	}

	return score, nil
}

func (s *ScoringService) Profile(ctx context.Context) (domain.ScoreParams, error) {
	if s.profiles == nil {
		return domain.DefaultScoreParams(), nil
	}

	params, err := s.profiles.Load(ctx)
	if err != nil {
		return domain.ScoreParams{}, fmt.Errorf("load scoring profile: %w", err)
	}

	return params, nil
}

func (s *ScoringService) SaveProfile(ctx context.Context, params domain.ScoreParams) error {
	if s.profiles == nil {
		return fmt.Errorf("%w: no scoring profile configured", domain.ErrValidation)
	}

	if err := s.profiles.Save(ctx, params); err != nil {
		return fmt.Errorf("save scoring profile: %w", err)
	}

	return nil
}
