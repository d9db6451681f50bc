package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/twmj/internal/domain"
	"go.uber.org/zap"
)

const (
	conflictDetail = "Template already exists. Please generate a new QR."
	notFoundDetail = "Template not found or expired."
)

var (
	errBadRequest = errors.New("bad request")
	errTooLarge   = errors.New("request body too large")
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTemplateConflict):
		return http.StatusConflict, conflictDetail
	case errors.Is(err, domain.ErrTemplateNotFound):
		return http.StatusNotFound, notFoundDetail
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidTemplateKey):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrDecode), errors.Is(err, errBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrServiceUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "inference service unavailable, retry later"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	} else {
		h.logger.Debug("request rejected",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	writeJSON(w, status, errorResponse{Detail: detail})
}
