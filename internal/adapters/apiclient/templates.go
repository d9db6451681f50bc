package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bnema/twmj/internal/domain"
)

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
	ExpiresAt time.Time    `json:"expires_at"`
	Template  templateBody `json:"template"`
}

func (r templateRecordResponse) record() domain.TemplateRecord {
	return domain.TemplateRecord{
		Key:       domain.TemplateKey(r.UUID),
		ExpiresAt: r.ExpiresAt,
		Template: domain.Template{
			Name:         r.Template.Name,
			Rules:        r.Template.Rules,
			RulesEnabled: r.Template.RulesEnabled,
		},
	}
}

func (c Client) ExportTemplate(ctx context.Context, key domain.TemplateKey, template domain.Template) (domain.TemplateRecord, error) {
	var response templateRecordResponse
	err := c.postJSON(ctx, "/templates/export", templateExportRequest{
		UUID:         string(key),
		Name:         template.Name,
		Rules:        template.Rules,
		RulesEnabled: template.RulesEnabled,
	}, &response)
	if err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("export template %s: %w", key, err)
	}
	return response.record(), nil
}

func (c Client) ImportTemplate(ctx context.Context, key domain.TemplateKey) (domain.TemplateRecord, error) {
	var response templateRecordResponse
	path := "/templates/import/" + url.PathEscape(string(key))
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &response); err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("import template %s: %w", key, err)
	}
	return response.record(), nil
}
