package remote

import (
	"context"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
)

const countPath = "/count"

// PointCounter delegates scoring to the rule engine behind the sidecar.
type PointCounter struct {
	Client Client
}

var _ ports.PointCounter = PointCounter{}

type scoreParams struct {
	WinnerSeat  int    `json:"winner_seat"`
	CurrentWind int    `json:"current_wind"`
	WinningTile string `json:"winning_tile"`
	SelfDrawn   bool   `json:"self_drawn"`
	DoorClear   bool   `json:"door_clear"`
	BaseValue   int    `json:"base_value"`
	Multiplier  int    `json:"multiplier"`
}

type countRequest struct {
	WinnerTiles map[string]int `json:"winner_tiles"`
	Params      scoreParams    `json:"params"`
}

type countResponse struct {
	Count                int            `json:"count"`
	Logs                 []string       `json:"logs"`
	WinningDeckOrganized map[string]any `json:"winning_deck_organized"`
}

func (c PointCounter) Count(ctx context.Context, tiles domain.WinnerTiles, params domain.ScoreParams) (domain.Score, error) {
	request := countRequest{
		WinnerTiles: tiles,
		Params: scoreParams{
			WinnerSeat:  int(params.WinnerSeat),
			CurrentWind: int(params.CurrentWind),
			WinningTile: params.WinningTile,
			SelfDrawn:   params.SelfDrawn,
			DoorClear:   params.DoorClear,
			BaseValue:   params.BaseValue,
			Multiplier:  params.Multiplier,
		},
	}

	var response countResponse
	if err := c.Client.postJSON(ctx, countPath, request, &response); err != nil {
		return domain.Score{}, err
	}

	logs := response.Logs
	if logs == nil {
		logs = []string{}
	}
	return domain.Score{
		Count:                response.Count,
		Logs:                 logs,
		WinningDeckOrganized: response.WinningDeckOrganized,
	}, nil
}
