package tiles

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

// Validator rejects hands that cannot exist on a real table: unknown tiles,
// more copies than the set holds, or the wrong number of tiles. Whether the
// hand is a winning one is left to the scoring engine.
type Validator struct{}

var _ ports.DeckValidator = Validator{}

func (Validator) Validate(ctx context.Context, hand domain.WinnerTiles) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(hand) == 0 {
		return fmt.Errorf("%w: winner tiles are empty", domain.ErrValidation)
	}

	names := make([]string, 0, len(hand))
	for name := range hand {
		names = append(names, name)
	}
	slices.Sort(names)

	var (
		errs  []error
		total int
		kongs int
	)
	for _, name := range names {
		count := hand[name]
		kind := KindOf(name)
		switch {
		case kind == KindUnknown:
			errs = append(errs, fmt.Errorf("unknown tile %q", name))
			continue
		case count < 0:
			errs = append(errs, fmt.Errorf("tile %q has negative count %d", name, count))
			continue
		case kind == KindFlower && count > maxFlowerCopies:
			errs = append(errs, fmt.Errorf("flower %q appears %d times, at most %d", name, count, maxFlowerCopies))
			continue
		case kind != KindFlower && count > maxCopies:
			errs = append(errs, fmt.Errorf("tile %q appears %d times, at most %d", name, count, maxCopies))
			continue
		}

		if kind == KindFlower {
			continue
		}
		total += count
		if count == maxCopies {
			kongs++
		}
	}

	if len(errs) == 0 {
		extra := total - HandSize
		switch {
		case extra < 0:
			errs = append(errs, fmt.Errorf("hand holds %d tiles, need %d", total, HandSize))
		case extra > min(kongs, MaxKongs):
			errs = append(errs, fmt.Errorf("hand holds %d tiles, at most %d with %d kongs", total, HandSize+min(kongs, MaxKongs), kongs))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	return nil
}
