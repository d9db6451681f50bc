package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	decksview "github.com/bnema/twmj/internal/adapters/render/decks"
	"github.com/bnema/twmj/internal/domain"
	"github.com/spf13/cobra"
)

type scanOutput struct {
	Frame           string        `json:"frame"`
	Status          string        `json:"status"`
	ClassifiedDecks *[]deckOutput `json:"classified_decks,omitempty"`
	Message         string        `json:"message,omitempty"`
}

func newScanCmd(env *cliEnv) *cobra.Command {
	var (
		clientID int64
		asText   bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "scan <image>...",
		Short: "Stream images to a live scan session, one frame per file",
		Long:  "scan opens one streaming session and sends every file as a frame in order. Each reply holds the decks stabilized over all frames accepted so far; a rejected frame is reported and the session continues.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, err := newAPIClient(env).OpenScan(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			defer func() { _ = scan.Close() }()

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read frame: %w", err)
				}

				frame := domain.Frame{Encoding: domain.FrameBinary, Data: data}
				if asText {
					frame = domain.Frame{Encoding: domain.FrameText, Data: []byte(base64.StdEncoding.EncodeToString(data))}
				}

				reply, err := scan.Send(cmd.Context(), frame)
				if err != nil {
					return err
				}

				name := filepath.Base(path)
				if asJSON {
					out := scanOutput{Frame: name, Status: "error", Message: reply.Message}
					if reply.OK {
						decks := toDecksOutput(reply.Decks)
						out = scanOutput{Frame: name, Status: "success", ClassifiedDecks: &decks}
					}
					if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
						return err
					}
					continue
				}

				if reply.OK {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), decksview.Render(name, reply.Decks))
				} else {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), decksview.RenderError(name, reply.Message))
				}
			}

			return scan.Close()
		},
	}

	cmd.Flags().Int64Var(&clientID, "client-id", 1, "Client id used in the session URL")
	cmd.Flags().BoolVar(&asText, "text", false, "Send frames as base64 text messages instead of binary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render one JSON object per frame")
	cmd.Flags().String("server", "", "Server base URL")

	return cmd
}

func toDecksOutput(decks []domain.ClassifiedDeck) []deckOutput {
	out := make([]deckOutput, 0, len(decks))
	for _, deck := range decks {
		detections := make([]detectionOutput, 0, len(deck.Detections))
		for _, d := range deck.Detections {
			detections = append(detections, detectionOutput{
				Tile:       d.Tile,
				Confidence: d.Confidence,
				BBox:       [4]float64{d.BBox.X1, d.BBox.Y1, d.BBox.X2, d.BBox.Y2},
			})
		}
		out = append(out, deckOutput{Detections: detections})
	}
	return out
}
