package metrics

import (
	"time"

	"github.com/bnema/twmj/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "twmj"

var inferenceLatencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 15, 30,
}

// Recorder owns the service's prometheus collectors. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	slotsInUse       prometheus.Gauge
	slotsWaiting     prometheus.Gauge
	slotWait         prometheus.Histogram
	inferenceLatency *prometheus.HistogramVec
	templateOps      *prometheus.CounterVec
	sweptRecords     prometheus.Counter
	scanSessions     prometheus.Gauge
	scanFrames       *prometheus.CounterVec
}

var _ ports.Telemetry = (*Recorder)(nil)

func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		slotsInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inference",
			Name:      "slots_in_use",
			Help:      "Inference slots currently held.",
		}),
		slotsWaiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inference",
			Name:      "slots_waiting",
			Help:      "Callers blocked waiting for an inference slot.",
		}),
		slotWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "inference",
			Name:      "slot_wait_seconds",
			Help:      "Time spent waiting for an inference slot.",
			Buckets:   inferenceLatencyBuckets,
		}),
		inferenceLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "inference",
			Name:      "duration_seconds",
			Help:      "Classifier call latency broken out by caller.",
			Buckets:   inferenceLatencyBuckets,
		}, []string{"caller", "outcome"}),
		templateOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "templates",
			Name:      "operations_total",
			Help:      "Exchange store operations broken out by operation and result.",
		}, []string{"op", "result"}),
		sweptRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "templates",
			Name:      "swept_records_total",
			Help:      "Expired or unreadable template records removed by sweeps.",
		}),
		scanSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "sessions_active",
			Help:      "Open streaming scan connections.",
		}),
		scanFrames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scan",
			Name:      "frames_total",
			Help:      "Scan frames processed broken out by status.",
		}, []string{"status"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{
			r.slotsInUse, r.slotsWaiting, r.slotWait, r.inferenceLatency,
			r.templateOps, r.sweptRecords, r.scanSessions, r.scanFrames,
		} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func (r *Recorder) SlotAcquired(waited time.Duration) {
	if r == nil {
		return
	}
	r.slotsInUse.Inc()
	r.slotWait.Observe(waited.Seconds())
}

func (r *Recorder) SlotReleased() {
	if r == nil {
		return
	}
	r.slotsInUse.Dec()
}

func (r *Recorder) SlotWaiting(delta float64) {
	if r == nil {
		return
	}
	r.slotsWaiting.Add(delta)
}

func (r *Recorder) Inference(caller string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	r.inferenceLatency.WithLabelValues(caller, outcome(err)).Observe(elapsed.Seconds())
}

func (r *Recorder) TemplateOp(op, result string) {
	if r == nil {
		return
	}
	r.templateOps.WithLabelValues(op, result).Inc()
}

func (r *Recorder) Swept(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.sweptRecords.Add(float64(n))
}

func (r *Recorder) ScanSessionOpened() {
	if r == nil {
		return
	}
	r.scanSessions.Inc()
}

func (r *Recorder) ScanSessionClosed() {
	if r == nil {
		return
	}
	r.scanSessions.Dec()
}

func (r *Recorder) ScanFrame(status string) {
	if r == nil {
		return
	}
	r.scanFrames.WithLabelValues(status).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
