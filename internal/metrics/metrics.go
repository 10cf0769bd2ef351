// Package metrics implements the session usage counters capability.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionMetrics counts task outcomes and files written for one session.
type SessionMetrics struct {
	SessionID string
	StartedAt time.Time

	mu           sync.Mutex
	successes    int
	failures     int
	filesCreated int
}

// NewSession creates metrics for a fresh session.
func NewSession() *SessionMetrics {
	return &SessionMetrics{
		SessionID: fmt.Sprintf("yt_trans_%s", uuid.NewString()[:8]),
		StartedAt: time.Now(),
	}
}

func (m *SessionMetrics) RecordSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes++
}

func (m *SessionMetrics) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

func (m *SessionMetrics) AddFilesCreated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filesCreated += n
}

// Summary renders a one-line usage report.
func (m *SessionMetrics) Summary() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	elapsed := time.Since(m.StartedAt).Round(time.Second)
	return fmt.Sprintf("session %s: %d succeeded, %d failed, %d files written in %s",
		m.SessionID, m.successes, m.failures, m.filesCreated, elapsed)
}
