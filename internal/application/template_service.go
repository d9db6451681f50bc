package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
	"go.uber.org/zap"
)

// TemplateService hands scoring templates from one client to another through
// the exchange store. Every export and import sweeps expired records first so
// staleness stays bounded between reaper runs.
type TemplateService struct {
	store  ports.TemplateStore
	logger *zap.Logger
}

func NewTemplateService(store ports.TemplateStore, logger *zap.Logger) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TemplateService{store: store, logger: logger}
}

func (s *TemplateService) Export(ctx context.Context, cmd ExportTemplateCommand) (domain.TemplateRecord, error) {
	if err := domain.ValidateTemplateKey(cmd.Key); err != nil {
		return domain.TemplateRecord{}, err
	}
	if err := cmd.Template.Validate(); err != nil {
		return domain.TemplateRecord{}, err
	}

	if err := s.sweep(ctx); err != nil {
		return domain.TemplateRecord{}, err
	}

	record, err := s.store.Put(ctx, cmd.Key, cmd.Template)
	if err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("export template: %w", err)
	}

	return record, nil
}

// Import returns the live record stored under key. Keys the store could never
// have written are reported as not found.
func (s *TemplateService) Import(ctx context.Context, key domain.TemplateKey) (domain.TemplateRecord, error) {
	if err := domain.ValidateTemplateKey(key); err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("%w: %w", domain.ErrTemplateNotFound, err)
	}

	if err := s.sweep(ctx); err != nil {
		return domain.TemplateRecord{}, err
	}

	record, err := s.store.Get(ctx, key)
	if err != nil {
		return domain.TemplateRecord{}, fmt.Errorf("import template: %w", err)
	}

	return record, nil
}

func (s *TemplateService) List(ctx context.Context) ([]domain.TemplateRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	return records, nil
}

func (s *TemplateService) Sweep(ctx context.Context) (int, error) {
	removed, err := s.store.Sweep(ctx)
	if err != nil {
		return removed, fmt.Errorf("sweep templates: %w", err)
	}

	return removed, nil
}

// sweep only fails when ctx is done. Individual unreadable records must not
// block an export or import.
func (s *TemplateService) sweep(ctx context.Context) error {
	removed, err := s.store.Sweep(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		s.logger.Warn("template sweep failed", zap.Error(err))
	}
	if removed > 0 {
		s.logger.Debug("swept expired templates", zap.Int("removed", removed))
	}

	return nil
}
