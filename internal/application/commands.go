package application

import (
	"github.com/bnema/twmj/internal/domain"
)

type ExportTemplateCommand struct {
	Key      domain.TemplateKey
	Template domain.Template
}

// ClassifyCommand is a single-shot classification request. Filename is only
// echoed back to the caller.
type ClassifyCommand struct {
	Filename string
	Data     []byte
}
