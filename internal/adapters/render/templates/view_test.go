package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyExchange(t *testing.T) {
	output, err := Render(nil, RenderOptions{Now: time.Now(), TTL: 3 * time.Minute})

	require.NoError(t, err)
	assert.Contains(t, output, "live records: 0")
	assert.Contains(t, output, "No templates waiting to be imported.")
}

func TestRenderOrdersBySoonestExpiry(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.TemplateRecord{
		{
			Key:       "late",
			ExpiresAt: now.Add(150 * time.Second),
			Template: domain.Template{
				Name:         "House rules",
				Rules:        map[string]any{"a": 1, "b": 2},
				RulesEnabled: map[string]any{"a": true, "b": false},
			},
		},
		{
			Key:       "soon",
			ExpiresAt: now.Add(9 * time.Second),
			Template:  domain.Template{Name: "Tournament", Rules: map[string]any{}, RulesEnabled: map[string]any{}},
		},
	}, RenderOptions{Now: now, TTL: 3 * time.Minute})

	require.NoError(t, err)
	assert.Contains(t, output, "live records: 2")
	assert.Contains(t, output, "House rules (late)")
	assert.Contains(t, output, "rules: 2, enabled: 1")
	assert.Contains(t, output, "expires in 2m 30s (11:02:30)")
	assert.Contains(t, output, "expires in 9s (11:00:09)")
	assert.Less(t, strings.Index(output, "Tournament (soon)"), strings.Index(output, "House rules (late)"))
}

func TestRenderMarksExpiredRecords(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.TemplateRecord{
		{Key: "gone", ExpiresAt: now, Template: domain.Template{Name: ""}},
	}, RenderOptions{Now: now, TTL: 3 * time.Minute})

	require.NoError(t, err)
	assert.Contains(t, output, "gone")
	assert.Contains(t, output, "[expired]")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name        string
		leftPercent float64
		wantFill    int
		wantEmpty   int
	}{
		{name: "full", leftPercent: 100, wantFill: 10, wantEmpty: 0},
		{name: "half", leftPercent: 50, wantFill: 5, wantEmpty: 5},
		{name: "over", leftPercent: 140, wantFill: 10, wantEmpty: 0},
		{name: "negative", leftPercent: -5, wantFill: 0, wantEmpty: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderProgressBar(tt.leftPercent, 10, s)
			assert.Equal(t, tt.wantFill, strings.Count(bar, "="))
			assert.Equal(t, tt.wantEmpty, strings.Count(bar, "-"))
		})
	}
}

func TestRemainingPercent(t *testing.T) {
	assert.InDelta(t, 50.0, remainingPercent(90*time.Second, 3*time.Minute), 0.001)
	assert.InDelta(t, 100.0, remainingPercent(time.Hour, 3*time.Minute), 0.001)
	assert.InDelta(t, 100.0, remainingPercent(time.Second, 0), 0.001)
}

func TestRenderSummarizesExpiredAndNext(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render([]domain.TemplateRecord{
		{Key: "stale", ExpiresAt: now.Add(-time.Second)},
		{Key: "later", ExpiresAt: now.Add(2 * time.Minute)},
		{Key: "sooner", ExpiresAt: now.Add(45 * time.Second)},
	}, RenderOptions{Now: now, TTL: 3 * time.Minute})

	require.NoError(t, err)
	assert.Contains(t, output, "live records: 2, awaiting sweep: 1")
	assert.Contains(t, output, "next to expire: sooner in 45s")
}

func TestSummarizeOrdersAndPicksFirstImportable(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	records := []domain.TemplateRecord{
		{Key: "b", ExpiresAt: now.Add(time.Minute)},
		{Key: "old", ExpiresAt: now},
		{Key: "a", ExpiresAt: now.Add(time.Minute)},
	}

	summary := summarize(records, RenderOptions{Now: now})

	keys := make([]domain.TemplateKey, 0, len(summary.ordered))
	for _, record := range summary.ordered {
		keys = append(keys, record.Key)
	}
	assert.Equal(t, []domain.TemplateKey{"old", "a", "b"}, keys)
	assert.Equal(t, 1, summary.expired)
	require.NotNil(t, summary.next)
	assert.Equal(t, domain.TemplateKey("a"), summary.next.Key)
	assert.Equal(t, domain.TemplateKey("b"), records[0].Key, "input order is left alone")
}

func TestSummarizeWithoutClockCountsNothingExpired(t *testing.T) {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	summary := summarize([]domain.TemplateRecord{{Key: "k", ExpiresAt: past}}, RenderOptions{})

	assert.Zero(t, summary.expired)
	require.NotNil(t, summary.next)
	assert.Equal(t, domain.TemplateKey("k"), summary.next.Key)
}

func TestModelViewEmptyUntilSummarized(t *testing.T) {
	m := newModel([]domain.TemplateRecord{{Key: "k"}}, RenderOptions{})
	assert.Empty(t, m.View())

	next, cmd := m.Update(m.Init()())
	require.NotNil(t, cmd)
	assert.Contains(t, next.View(), "live records: 1")
}
