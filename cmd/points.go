package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/twmj/internal/domain"
	"github.com/spf13/cobra"
)

type pointsOutput struct {
	Count                int            `json:"count"`
	Logs                 []string       `json:"logs"`
	WinningDeckOrganized map[string]any `json:"winning_deck_organized"`
}

func newPointsCmd(env *cliEnv) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "points [tile[=count]]...",
		Short: "Count the points of a winning hand",
		Example: `  twmj points m1=3 m2=3 m3=3 s5=2 t7=3 east=3 f1
  twmj points --file hand.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			hand, err := readHand(file, args)
			if err != nil {
				return err
			}

			client := newAPIClient(env)
			var score domain.Score
			call := serverCall{
				label: "Counting points...",
				run: func(ctx context.Context) error {
					var err error
					score, err = client.GetPoints(ctx, hand)
					return err
				},
				summary: func() string {
					return fmt.Sprintf("hand scores %d", score.Count)
				},
			}
			if err := runClientCall(cmd, asJSON, call); err != nil {
				return err
			}

			if asJSON {
				logs := score.Logs
				if logs == nil {
					logs = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), pointsOutput{
					Count:                score.Count,
					Logs:                 logs,
					WinningDeckOrganized: score.WinningDeckOrganized,
				})
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "points: %d\n", score.Count)
			for _, line := range score.Logs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Hand as a JSON object of tile counts")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().String("server", "", "Server base URL")

	return cmd
}

// readHand builds the hand from a JSON file or from tile[=count] arguments.
// A tile named twice adds up.
func readHand(file string, args []string) (domain.WinnerTiles, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("use either --file or tile arguments, not both")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read hand: %w", err)
		}
		var hand domain.WinnerTiles
		if err := json.Unmarshal(data, &hand); err != nil {
			return nil, fmt.Errorf("parse hand: %w", err)
		}
		return hand, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("a hand is required: pass tile[=count] arguments or --file")
	}

	hand := domain.WinnerTiles{}
	for _, arg := range args {
		tile, rawCount, hasCount := strings.Cut(arg, "=")
		tile = strings.TrimSpace(tile)
		if tile == "" {
			return nil, fmt.Errorf("invalid tile argument %q", arg)
		}

		count := 1
		if hasCount {
			n, err := strconv.Atoi(rawCount)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid count in %q", arg)
			}
			count = n
		}
		hand[tile] += count
	}
	return hand, nil
}
