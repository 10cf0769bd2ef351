package ports

// Metrics records session usage counters. It is an injected capability
// with a no-op fallback, so its absence only disables the summary.
type Metrics interface {
	RecordSuccess()
	RecordFailure()
	AddFilesCreated(n int)
	Summary() string
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordSuccess()       {}
func (NoopMetrics) RecordFailure()       {}
func (NoopMetrics) AddFilesCreated(int)  {}
func (NoopMetrics) Summary() string      { return "" }
