package ports

import "time"

// Telemetry receives inference and scan session events. Implementations must
// be safe for concurrent use.
type Telemetry interface {
	Inference(caller string, elapsed time.Duration, err error)
	ScanSessionOpened()
	ScanSessionClosed()
	ScanFrame(status string)
}

type NopTelemetry struct{}

func (NopTelemetry) Inference(string, time.Duration, error) {}
func (NopTelemetry) ScanSessionOpened()                     {}
func (NopTelemetry) ScanSessionClosed()                     {}
func (NopTelemetry) ScanFrame(string)                       {}
