package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderTracksSlotsAndTemplateOps(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.SlotAcquired(10 * time.Millisecond)
	r.SlotAcquired(0)
	r.SlotReleased()
	r.TemplateOp("put", "conflict")
	r.TemplateOp("put", "conflict")
	r.Swept(3)
	r.Inference("scan", time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.slotsInUse))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.templateOps.WithLabelValues("put", "conflict")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sweptRecords))
	assert.Equal(t, 1, testutil.CollectAndCount(r.inferenceLatency))
}

func TestRecorderRejectsDoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)

	_, err = NewRecorder(reg)
	require.Error(t, err)
}

func TestNilRecorderIsNoop(t *testing.T) {
	t.Parallel()

	var r *Recorder
	assert.NotPanics(t, func() {
		r.SlotAcquired(time.Second)
		r.SlotReleased()
		r.SlotWaiting(1)
		r.Inference("classify", time.Second, nil)
		r.TemplateOp("get", "hit")
		r.Swept(1)
		r.ScanSessionOpened()
		r.ScanSessionClosed()
		r.ScanFrame("success")
	})
}
