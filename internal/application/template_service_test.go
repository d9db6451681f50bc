package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportCommand(key domain.TemplateKey) ExportTemplateCommand {
	return ExportTemplateCommand{
		Key: key,
		Template: domain.Template{
			Name:         "t1",
			Rules:        map[string]any{},
			RulesEnabled: map[string]any{},
		},
	}
}

func TestTemplateServiceExportSweepsThenPuts(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	cmd := exportCommand("abc")
	want := domain.TemplateRecord{Key: "abc", ExpiresAt: time.Date(2026, 10, 18, 12, 3, 0, 0, time.UTC), Template: cmd.Template}

	var swept bool
	store.EXPECT().Sweep(mockAnyContext()).RunAndReturn(func(context.Context) (int, error) {
		swept = true
		return 2, nil
	}).Once()
	store.EXPECT().Put(mockAnyContext(), domain.TemplateKey("abc"), cmd.Template).RunAndReturn(
		func(context.Context, domain.TemplateKey, domain.Template) (domain.TemplateRecord, error) {
			assert.True(t, swept, "sweep must run before put")
			return want, nil
		}).Once()

	got, err := service.Export(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTemplateServiceExportSurfacesConflict(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	cmd := exportCommand("abc")
	store.EXPECT().Sweep(mockAnyContext()).Return(0, nil)
	store.EXPECT().Put(mockAnyContext(), domain.TemplateKey("abc"), cmd.Template).Return(domain.TemplateRecord{}, domain.ErrTemplateConflict)

	_, err := service.Export(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrTemplateConflict)
}

func TestTemplateServiceExportRejectsBadInputWithoutTouchingStore(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	_, err := service.Export(context.Background(), exportCommand("../etc"))
	require.ErrorIs(t, err, domain.ErrInvalidTemplateKey)

	cmd := exportCommand("abc")
	cmd.Template.Rules = nil
	_, err = service.Export(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTemplateServiceExportContinuesAfterPartialSweepFailure(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	cmd := exportCommand("abc")
	store.EXPECT().Sweep(mockAnyContext()).Return(1, errors.New("delete template record: permission denied"))
	store.EXPECT().Put(mockAnyContext(), domain.TemplateKey("abc"), cmd.Template).Return(domain.TemplateRecord{Key: "abc"}, nil)

	_, err := service.Export(context.Background(), cmd)
	require.NoError(t, err)
}

func TestTemplateServiceExportStopsWhenSweepIsCancelled(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	store.EXPECT().Sweep(mockAnyContext()).Return(0, context.Canceled)

	_, err := service.Export(context.Background(), exportCommand("abc"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTemplateServiceImport(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	want := domain.TemplateRecord{Key: "abc", Template: domain.Template{Name: "t1"}}
	store.EXPECT().Sweep(mockAnyContext()).Return(0, nil)
	store.EXPECT().Get(mockAnyContext(), domain.TemplateKey("abc")).Return(want, nil)

	got, err := service.Import(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTemplateServiceImportMissing(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	store.EXPECT().Sweep(mockAnyContext()).Return(0, nil)
	store.EXPECT().Get(mockAnyContext(), domain.TemplateKey("abc")).Return(domain.TemplateRecord{}, domain.ErrTemplateNotFound)

	_, err := service.Import(context.Background(), "abc")
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestTemplateServiceImportInvalidKeyIsNotFound(t *testing.T) {
	store := mocks.NewMockTemplateStore(t)
	service := NewTemplateService(store, nil)

	_, err := service.Import(context.Background(), "a/b")
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
