package domain

import "errors"

var (
	ErrTemplateConflict   = errors.New("template already exists")
	ErrTemplateNotFound   = errors.New("template not found or expired")
	ErrInvalidTemplateKey = errors.New("invalid template key")
	ErrDecode             = errors.New("decode error")
	ErrValidation         = errors.New("validation error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrScanSessionClosed  = errors.New("scan session closed")
)
