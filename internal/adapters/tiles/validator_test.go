package tiles

import (
	"context"
	"testing"

	"github.com/bnema/twmj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pingHu() domain.WinnerTiles {
	return domain.WinnerTiles{
		"m1": 1, "m2": 1, "m3": 1,
		"m4": 1, "m5": 1, "m6": 1,
		"t2": 1, "t3": 1, "t4": 1,
		"s7": 1, "s8": 1, "s9": 1,
		"east":  3,
		"zhong": 2,
		"f1":    1,
	}
}

func TestValidatorAcceptsCompleteHand(t *testing.T) {
	t.Parallel()

	hand := pingHu()
	require.Equal(t, HandSize, hand.Total()-1)

	require.NoError(t, Validator{}.Validate(context.Background(), hand))
}

func TestValidatorAcceptsKongExtraTile(t *testing.T) {
	t.Parallel()

	hand := pingHu()
	hand["east"] = 4

	require.NoError(t, Validator{}.Validate(context.Background(), hand))
}

func TestValidatorRejectsImpossibleHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(domain.WinnerTiles)
		message string
	}{
		{name: "unknown tile", mutate: func(h domain.WinnerTiles) { h["joker"] = 1 }, message: `unknown tile "joker"`},
		{name: "too many copies", mutate: func(h domain.WinnerTiles) { h["east"] = 5 }, message: "at most 4"},
		{name: "duplicate flower", mutate: func(h domain.WinnerTiles) { h["f1"] = 2 }, message: `flower "f1"`},
		{name: "short hand", mutate: func(h domain.WinnerTiles) { delete(h, "m1") }, message: "need 17"},
		{name: "long hand", mutate: func(h domain.WinnerTiles) { h["s1"] = 1 }, message: "at most 17"},
		{name: "negative", mutate: func(h domain.WinnerTiles) { h["s1"] = -1 }, message: "negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hand := pingHu()
			tt.mutate(hand)

			err := Validator{}.Validate(context.Background(), hand)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidatorRejectsEmptyHand(t *testing.T) {
	t.Parallel()

	err := Validator{}.Validate(context.Background(), domain.WinnerTiles{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAllListsTilesInDisplayOrder(t *testing.T) {
	t.Parallel()

	all := All()
	require.Len(t, all, 27+4+3+8)
	assert.Equal(t, []string{"m1", "m2"}, all[:2])
	assert.Equal(t, "s9", all[26])
	assert.Equal(t, []string{"east", "south", "west", "north", "zhong", "fa", "bak"}, all[27:34])
	assert.Equal(t, KindFlower, KindOf(all[len(all)-1]))
}
