package application

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScanService opens streaming classification sessions. Sessions share the slot
// pool and the classifier but nothing else.
type ScanService struct {
	inference inference
	logger    *zap.Logger
	maxFrames int
}

type ScanServiceOption func(*ScanService)

// WithMaxFrames bounds every session's accumulator to the most recent n
// frames. Zero keeps all frames.
func WithMaxFrames(n int) ScanServiceOption {
	return func(s *ScanService) {
		s.maxFrames = max(n, 0)
	}
}

func WithScanLogger(logger *zap.Logger) ScanServiceOption {
	return func(s *ScanService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewScanService(decoder ports.ImageDecoder, pool ports.SlotPool, classifier ports.Classifier, telemetry ports.Telemetry, opts ...ScanServiceOption) *ScanService {
	if telemetry == nil {
		telemetry = ports.NopTelemetry{}
	}

	s := &ScanService{
		inference: inference{decoder: decoder, pool: pool, classifier: classifier, telemetry: telemetry},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *ScanService) NewSession(clientID int64) *ScanSession {
	id := uuid.NewString()
	s.inference.telemetry.ScanSessionOpened()

	session := &ScanSession{
		id:          id,
		clientID:    clientID,
		service:     s,
		accumulator: domain.NewAccumulator(s.maxFrames),
		openedAt:    time.Now(),
		logger:      s.logger.With(zap.String("session", id), zap.Int64("client_id", clientID)),
	}
	session.logger.Info("scan session opened")

	return session
}

// ScanSession is the state of one streaming connection. HandleFrame must be
// called from a single goroutine; Close may be called from any goroutine.
type ScanSession struct {
	id          string
	clientID    int64
	service     *ScanService
	accumulator *domain.Accumulator
	openedAt    time.Time
	logger      *zap.Logger

	closed   atomic.Bool
	received atomic.Int64
	failed   atomic.Int64
}

func (s *ScanSession) ID() string {
	return s.id
}

func (s *ScanSession) ClientID() int64 {
	return s.clientID
}

func (s *ScanSession) State() ScanSessionState {
	if s.closed.Load() {
		return ScanSessionClosed
	}
	return ScanSessionOpen
}

// Accumulated reports how many frames currently contribute to the stabilized
// result.
func (s *ScanSession) Accumulated() int {
	return s.accumulator.Len()
}

// HandleFrame classifies one frame and folds it into the session. Problems
// with the frame itself produce an error result and leave the session open;
// the returned error is non-nil only when the session or ctx is finished.
func (s *ScanSession) HandleFrame(ctx context.Context, frame domain.Frame) (ScanResult, error) {
	if s.closed.Load() {
		return ScanResult{}, domain.ErrScanSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return ScanResult{}, err
	}
	s.received.Add(1)

	payload, err := frame.Payload()
	if err != nil {
		return s.frameError(frame, err), nil
	}

	_, decks, err := s.service.inference.run(ctx, "scan", payload, s.accumulator.Frames())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ScanResult{}, ctxErr
		}
		return s.frameError(frame, err), nil
	}

	s.accumulator.Fold(decks)
	s.service.inference.telemetry.ScanFrame(string(ScanStatusSuccess))

	return ScanResult{
		Status: ScanStatusSuccess,
		Decks:  s.accumulator.Stabilized(),
	}, nil
}

func (s *ScanSession) frameError(frame domain.Frame, err error) ScanResult {
	s.failed.Add(1)
	s.service.inference.telemetry.ScanFrame(string(ScanStatusError))
	s.logger.Debug("scan frame rejected",
		zap.Stringer("encoding", frame.Encoding),
		zap.Int("bytes", len(frame.Data)),
		zap.Error(err),
	)

	return ScanResult{Status: ScanStatusError, Message: err.Error()}
}

// Close ends the session. Later calls are no-ops.
func (s *ScanSession) Close() {
	if !s.closed.CompareAndSwap(false, true) {
		return
	}

	s.service.inference.telemetry.ScanSessionClosed()
	s.logger.Info("scan session closed",
		zap.Int64("frames", s.received.Load()),
		zap.Int64("rejected", s.failed.Load()),
		zap.Duration("duration", time.Since(s.openedAt)),
	)
}
