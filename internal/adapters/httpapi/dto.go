package httpapi

import (
	"time"

	"github.com/bnema/twmj/internal/application"
	"github.com/bnema/twmj/internal/domain"
)

type bboxDTO struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type detectionDTO struct {
	Tile       string  `json:"tile"`
	Confidence float64 `json:"confidence"`
	BBox       bboxDTO `json:"bbox"`
}

type deckDTO struct {
	Detections []detectionDTO `json:"detections"`
}

type classifyResponse struct {
	Filename        string    `json:"filename"`
	Size            int       `json:"size"`
	ClassifiedDecks []deckDTO `json:"classified_decks"`
}

type scanResponse struct {
	Status          string     `json:"status"`
	ClassifiedDecks *[]deckDTO `json:"classified_decks,omitempty"`
	Message         string     `json:"message,omitempty"`
}

type pointsResponse struct {
	Count                int            `json:"count"`
	Logs                 []string       `json:"logs"`
	WinningDeckOrganized map[string]any `json:"winning_deck_organized"`
}

type templateExportRequest struct {
	UUID         string         `json:"uuid"`
	Name         string         `json:"name"`
	Rules        map[string]any `json:"rules"`
	RulesEnabled map[string]any `json:"rules_enabled"`
}

type templateBody struct {
	Name         string         `json:"name"`
	Rules        map[string]any `json:"rules"`
	RulesEnabled map[string]any `json:"rules_enabled"`
}

type templateRecordResponse struct {
	UUID      string       `json:"uuid"`
	ExpiresAt string       `json:"expires_at"`
	Template  templateBody `json:"template"`
}

func toDecksDTO(decks []domain.ClassifiedDeck) []deckDTO {
	out := make([]deckDTO, 0, len(decks))
	for _, deck := range decks {
		detections := make([]detectionDTO, 0, len(deck.Detections))
		for _, d := range deck.Detections {
			detections = append(detections, detectionDTO{
				Tile:       d.Tile,
				Confidence: d.Confidence,
				BBox:       bboxDTO{X1: d.BBox.X1, Y1: d.BBox.Y1, X2: d.BBox.X2, Y2: d.BBox.Y2},
			})
		}
		out = append(out, deckDTO{Detections: detections})
	}
	return out
}

func toScanResponse(result application.ScanResult) scanResponse {
	if result.Status != application.ScanStatusSuccess {
		return scanResponse{Status: string(result.Status), Message: result.Message}
	}

	decks := toDecksDTO(result.Decks)
	return scanResponse{Status: string(result.Status), ClassifiedDecks: &decks}
}

func toRecordResponse(record domain.TemplateRecord) templateRecordResponse {
	return templateRecordResponse{
		UUID:      string(record.Key),
		ExpiresAt: record.ExpiresAt.UTC().Format(time.RFC3339Nano),
		Template: templateBody{
			Name:         record.Template.Name,
			Rules:        nonNilRules(record.Template.Rules),
			RulesEnabled: nonNilRules(record.Template.RulesEnabled),
		},
	}
}

func (r templateExportRequest) command() application.ExportTemplateCommand {
	return application.ExportTemplateCommand{
		Key: domain.TemplateKey(r.UUID),
		Template: domain.Template{
			Name:         r.Name,
			Rules:        r.Rules,
			RulesEnabled: r.RulesEnabled,
		},
	}
}

func nonNilRules(rules map[string]any) map[string]any {
	if rules == nil {
		return map[string]any{}
	}
	return rules
}
