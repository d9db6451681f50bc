package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/twmj/internal/adapters/apiclient"
	decksview "github.com/bnema/twmj/internal/adapters/render/decks"
	"github.com/spf13/cobra"
)

type detectionOutput struct {
	Tile       string     `json:"tile"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"`
}

type deckOutput struct {
	Detections []detectionOutput `json:"detections"`
}

type classifyOutput struct {
	Filename        string       `json:"filename"`
	Size            int          `json:"size"`
	ClassifiedDecks []deckOutput `json:"classified_decks"`
}

func newClassifyCmd(env *cliEnv) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <image>...",
		Short: "Recognise the tiles in hand photos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(env)
			results := make([]apiclient.Classification, 0, len(args))

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}

				name := filepath.Base(path)
				var result apiclient.Classification
				call := serverCall{
					label: "Classifying " + name + "...",
					run: func(ctx context.Context) error {
						var err error
						result, err = client.Classify(ctx, name, data)
						return err
					},
					summary: func() string {
						return fmt.Sprintf("%s: %d deck(s) recognised", name, len(result.Decks))
					},
				}
				if err := runClientCall(cmd, asJSON, call); err != nil {
					return err
				}
				results = append(results, result)
			}

			if asJSON {
				out := make([]classifyOutput, 0, len(results))
				for _, result := range results {
					out = append(out, classifyOutput{
						Filename:        result.Filename,
						Size:            result.Size,
						ClassifiedDecks: toDecksOutput(result.Decks),
					})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			for _, result := range results {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), decksview.Render(fmt.Sprintf("%s (%d bytes)", result.Filename, result.Size), result.Decks))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().String("server", "", "Server base URL")

	return cmd
}
