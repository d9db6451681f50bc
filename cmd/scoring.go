package cmd

import (
	"fmt"

	"github.com/bnema/twmj/internal/domain"
	"github.com/spf13/cobra"
)

type scoringProfileOutput struct {
	WinnerSeat  string `json:"winner_seat"`
	CurrentWind string `json:"current_wind"`
	WinningTile string `json:"winning_tile"`
	SelfDrawn   bool   `json:"self_drawn"`
	DoorClear   bool   `json:"door_clear"`
	BaseValue   int    `json:"base_value"`
	Multiplier  int    `json:"multiplier"`
}

func newScoringCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoring",
		Short: "Manage the round parameters the server scores hands with",
	}

	cmd.AddCommand(
		newScoringShowCmd(env),
		newScoringSetCmd(env),
	)

	return cmd
}

func newScoringShowCmd(env *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the scoring profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := wireScoring(env)
			if err != nil {
				return err
			}

			params, err := service.Profile(cmd.Context())
			if err != nil {
				return err
			}

			out := toScoringProfileOutput(params)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "winner seat: %s\n", out.WinnerSeat)
			_, _ = fmt.Fprintf(w, "current wind: %s\n", out.CurrentWind)
			_, _ = fmt.Fprintf(w, "winning tile: %s\n", valueOrNone(out.WinningTile))
			_, _ = fmt.Fprintf(w, "self drawn: %t\n", out.SelfDrawn)
			_, _ = fmt.Fprintf(w, "door clear: %t\n", out.DoorClear)
			_, _ = fmt.Fprintf(w, "base value: %d\n", out.BaseValue)
			_, _ = fmt.Fprintf(w, "multiplier: %d\n", out.Multiplier)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().String("profile", "", "Scoring profile file")

	return cmd
}

func newScoringSetCmd(env *cliEnv) *cobra.Command {
	var (
		winnerSeat  string
		currentWind string
		winningTile string
		selfDrawn   bool
		doorClear   bool
		baseValue   int
		multiplier  int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change scoring profile fields; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := wireScoring(env)
			if err != nil {
				return err
			}

			params, err := service.Profile(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("winner-seat") {
				if params.WinnerSeat, err = domain.ParseSeat(winnerSeat); err != nil {
					return err
				}
			}
			if flags.Changed("current-wind") {
				if params.CurrentWind, err = domain.ParseSeat(currentWind); err != nil {
					return err
				}
			}
			if flags.Changed("winning-tile") {
				params.WinningTile = winningTile
			}
			if flags.Changed("self-drawn") {
				params.SelfDrawn = selfDrawn
			}
			if flags.Changed("door-clear") {
				params.DoorClear = doorClear
			}
			if flags.Changed("base-value") {
				params.BaseValue = baseValue
			}
			if flags.Changed("multiplier") {
				params.Multiplier = multiplier
			}

			if err := service.SaveProfile(cmd.Context(), params); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Scoring profile saved")
			return err
		},
	}

	cmd.Flags().StringVar(&winnerSeat, "winner-seat", "", "Seat of the winner (east, south, west, north or 1-4)")
	cmd.Flags().StringVar(&currentWind, "current-wind", "", "Prevailing wind of the round")
	cmd.Flags().StringVar(&winningTile, "winning-tile", "", "Tile that completed the hand")
	cmd.Flags().BoolVar(&selfDrawn, "self-drawn", true, "Winning tile was self drawn")
	cmd.Flags().BoolVar(&doorClear, "door-clear", true, "Hand has no exposed melds")
	cmd.Flags().IntVar(&baseValue, "base-value", 0, "Base value per hand")
	cmd.Flags().IntVar(&multiplier, "multiplier", 1, "Value per point")
	cmd.Flags().String("profile", "", "Scoring profile file")

	return cmd
}

func toScoringProfileOutput(params domain.ScoreParams) scoringProfileOutput {
	return scoringProfileOutput{
		WinnerSeat:  params.WinnerSeat.String(),
		CurrentWind: params.CurrentWind.String(),
		WinningTile: params.WinningTile,
		SelfDrawn:   params.SelfDrawn,
		DoorClear:   params.DoorClear,
		BaseValue:   params.BaseValue,
		Multiplier:  params.Multiplier,
	}
}

func valueOrNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
