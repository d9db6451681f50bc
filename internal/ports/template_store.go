package ports

import (
	"context"

	"github.com/bnema/twmj/internal/domain"
)

// TemplateStore holds short-lived template records keyed by a client-chosen key.
// Put fails with domain.ErrTemplateConflict while an unexpired record exists
// under the key; Get fails with domain.ErrTemplateNotFound for missing, expired
// or unreadable records.
type TemplateStore interface {
	Put(ctx context.Context, key domain.TemplateKey, template domain.Template) (domain.TemplateRecord, error)
	Get(ctx context.Context, key domain.TemplateKey) (domain.TemplateRecord, error)
	List(ctx context.Context) ([]domain.TemplateRecord, error)
	Sweep(ctx context.Context) (int, error)
	WipeAll(ctx context.Context) error
}
