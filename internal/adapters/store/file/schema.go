package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/twmj/internal/domain"
)

var errCorruptRecord = errors.New("corrupt template record")

type recordSchema struct {
	UUID      string         `json:"uuid"`
	ExpiresAt string         `json:"expires_at"`
	Template  templateSchema `json:"template"`
}

type templateSchema struct {
	Name         string         `json:"name"`
	Rules        map[string]any `json:"rules"`
	RulesEnabled map[string]any `json:"rules_enabled"`
}

func encodeRecord(record domain.TemplateRecord) ([]byte, error) {
	data, err := json.Marshal(recordSchema{
		UUID:      string(record.Key),
		ExpiresAt: record.ExpiresAt.UTC().Format(time.RFC3339Nano),
		Template: templateSchema{
			Name:         record.Template.Name,
			Rules:        record.Template.Rules,
			RulesEnabled: record.Template.RulesEnabled,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode template record %q: %w", record.Key, err)
	}

	return data, nil
}

func decodeRecord(data []byte) (domain.TemplateRecord, error) {
	var schema recordSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("%w: %v", errCorruptRecord, err)
	}
	if schema.ExpiresAt == "" {
		return domain.TemplateRecord{}, fmt.Errorf("%w: missing expires_at", errCorruptRecord)
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, schema.ExpiresAt)
	if err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("%w: %v", errCorruptRecord, err)
	}

	return domain.TemplateRecord{
		Key:       domain.TemplateKey(schema.UUID),
		ExpiresAt: expiresAt.UTC(),
		Template: domain.Template{
			Name:         schema.Template.Name,
			Rules:        schema.Template.Rules,
			RulesEnabled: schema.Template.RulesEnabled,
		},
	}, nil
}
