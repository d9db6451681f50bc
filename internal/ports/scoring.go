package ports

import (
	"context"

	"github.com/bnema/twmj/internal/domain"
)

type DeckValidator interface {
	Validate(ctx context.Context, tiles domain.WinnerTiles) error
}

type PointCounter interface {
	Count(ctx context.Context, tiles domain.WinnerTiles, params domain.ScoreParams) (domain.Score, error)
}

type ScoreProfileRepository interface {
	Load(ctx context.Context) (domain.ScoreParams, error)
	Save(ctx context.Context, params domain.ScoreParams) error
}
