package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/twmj/internal/domain"
)

// textDecoder treats payloads of the form "img:<tiles>" as images and rejects
// anything else.
type textDecoder struct{}

func (textDecoder) Decode(data []byte) (domain.Image, error) {
	raw := string(data)
	if !strings.HasPrefix(raw, "img:") {
		return domain.Image{}, fmt.Errorf("%w: not an image", domain.ErrDecode)
	}
	return domain.Image{Data: data, Format: "test", Width: 1, Height: 1}, nil
}

// slotCheckingDecoder decodes like textDecoder and records how many slots
// were held at the moment each decode ran.
type slotCheckingDecoder struct {
	pool interface{ InUse() int }

	mu    sync.Mutex
	inUse []int
}

func (d *slotCheckingDecoder) Decode(data []byte) (domain.Image, error) {
	d.mu.Lock()
	d.inUse = append(d.inUse, d.pool.InUse())
	d.mu.Unlock()
	return textDecoder{}.Decode(data)
}

func (d *slotCheckingDecoder) InUse() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.inUse...)
}

// echoClassifier returns one deck with a detection per comma separated tile in
// the image payload and remembers the prior it was given on each call.
type echoClassifier struct {
	mu     sync.Mutex
	priors [][][]domain.ClassifiedDeck
}

func (c *echoClassifier) Classify(ctx context.Context, image domain.Image, prior [][]domain.ClassifiedDeck) ([]domain.ClassifiedDeck, error) {
	c.mu.Lock()
	c.priors = append(c.priors, prior)
	c.mu.Unlock()

	names := strings.Split(strings.TrimPrefix(string(image.Data), "img:"), ",")
	deck := domain.ClassifiedDeck{}
	for i, name := range names {
		deck.Detections = append(deck.Detections, domain.Detection{
			Tile:       name,
			Confidence: 0.8,
			BBox:       domain.BBox{X1: float64(i * 10), X2: float64(i*10 + 8), Y2: 12},
		})
	}
	return []domain.ClassifiedDeck{deck}, nil
}

func (c *echoClassifier) Priors() [][][]domain.ClassifiedDeck {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.priors
}

// slowClassifier holds every call for delay and records the peak number of
// calls in flight.
type slowClassifier struct {
	delay   time.Duration
	current atomic.Int64
	peak    atomic.Int64
	calls   atomic.Int64
}

func (c *slowClassifier) Classify(ctx context.Context, _ domain.Image, _ [][]domain.ClassifiedDeck) ([]domain.ClassifiedDeck, error) {
	now := c.current.Add(1)
	defer c.current.Add(-1)
	c.calls.Add(1)
	for {
		peak := c.peak.Load()
		if now <= peak || c.peak.CompareAndSwap(peak, now) {
			break
		}
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return []domain.ClassifiedDeck{{Detections: []domain.Detection{{Tile: "m1", Confidence: 1}}}}, nil
}

// blockingClassifier blocks until ctx ends.
type blockingClassifier struct {
	entered chan struct{}
}

func (c *blockingClassifier) Classify(ctx context.Context, _ domain.Image, _ [][]domain.ClassifiedDeck) ([]domain.ClassifiedDeck, error) {
	close(c.entered)
	<-ctx.Done()
	return nil, ctx.Err()
}

type recordingTelemetry struct {
	mu       sync.Mutex
	opened   int
	closed   int
	frames   map[string]int
	inferred int
}

func (r *recordingTelemetry) Inference(string, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inferred++
}

func (r *recordingTelemetry) ScanSessionOpened() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened++
}

func (r *recordingTelemetry) ScanSessionClosed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed++
}

func (r *recordingTelemetry) ScanFrame(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frames == nil {
		r.frames = map[string]int{}
	}
	r.frames[status]++
}
