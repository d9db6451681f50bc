package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallOutcomeUsesSummaryOnSuccess(t *testing.T) {
	call := serverCall{label: "Publishing template...", summary: func() string { return "published qr-1, importable for 3m0s" }}

	line := callOutcome(call, callFinishedMsg{elapsed: 1500 * time.Microsecond})

	assert.Contains(t, line, "ok")
	assert.Contains(t, line, "published qr-1, importable for 3m0s")
	assert.Contains(t, line, "(2ms)")
	assert.NotContains(t, line, "Publishing template...")
}

func TestCallOutcomeFallsBackToLabel(t *testing.T) {
	call := serverCall{label: "Counting points...", summary: func() string { return "" }}

	assert.Contains(t, callOutcome(call, callFinishedMsg{}), "Counting points...")
	assert.Contains(t, callOutcome(serverCall{label: "Counting points..."}, callFinishedMsg{}), "Counting points...")
}

func TestCallOutcomeOnFailureSkipsSummary(t *testing.T) {
	called := false
	call := serverCall{label: "Classifying hand.png...", summary: func() string {
		called = true
		return "never"
	}}

	line := callOutcome(call, callFinishedMsg{err: errors.New("boom")})

	assert.Contains(t, line, "Classifying hand.png...")
	assert.NotContains(t, line, "never")
	assert.False(t, called)
}

func TestServerCallModelKeepsOutcomeAfterFinishing(t *testing.T) {
	call := serverCall{label: "Counting points...", summary: func() string { return "hand scores 8" }}
	m := newServerCallModel(call, nil, time.Now())
	assert.Contains(t, m.View(), "Counting points...")
	assert.NoError(t, m.err())

	next, cmd := m.Update(callFinishedMsg{elapsed: time.Second})
	require.NotNil(t, cmd)
	finished := next.(serverCallModel)
	assert.Contains(t, finished.View(), "hand scores 8")
	assert.NoError(t, finished.err())

	next, _ = m.Update(callFinishedMsg{err: context.DeadlineExceeded})
	assert.ErrorIs(t, next.(serverCallModel).err(), context.DeadlineExceeded)
}

func TestRunServerCallReportsOutcome(t *testing.T) {
	var out bytes.Buffer
	record := ""
	call := serverCall{
		label: "Publishing template...",
		run: func(context.Context) error {
			record = "qr-7"
			return nil
		},
		summary: func() string { return "published " + record },
	}

	require.NoError(t, runServerCall(context.Background(), &out, call))
	assert.Contains(t, out.String(), "published qr-7")
}

func TestRunServerCallReturnsCallError(t *testing.T) {
	want := errors.New("server unavailable")
	call := serverCall{label: "Counting points...", run: func(context.Context) error { return want }}

	err := runServerCall(context.Background(), &bytes.Buffer{}, call)
	require.ErrorIs(t, err, want)
}
