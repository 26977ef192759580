// control/metrics_test.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"sync"
	"testing"
)

func TestMetricsSetAndSnapshot(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Set("sessions.active", 7)
	mr.Set("listener.addr", "127.0.0.1:9001")

	snap := mr.GetSnapshot()
	if snap["sessions.active"] != 7 || snap["listener.addr"] != "127.0.0.1:9001" {
		t.Errorf("snapshot = %v", snap)
	}
	// snapshot is a copy, later writes must not leak into it
	mr.Set("sessions.active", 8)
	if snap["sessions.active"] != 7 {
		t.Error("snapshot mutated by later Set")
	}
}

func TestMetricsCounter(t *testing.T) {
	mr := NewMetricsRegistry()
	if mr.Counter("missing") != 0 {
		t.Error("absent counter must read zero")
	}
	mr.Inc("chain.messageReceived", 1)
	mr.Inc("chain.messageReceived", 2)
	if got := mr.Counter("chain.messageReceived"); got != 3 {
		t.Errorf("counter = %d, want 3", got)
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	mr := NewMetricsRegistry()
	const workers, perWorker = 8, 1000
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				mr.Inc("hits", 1)
			}
		}()
	}
	wg.Wait()
	if got := mr.Counter("hits"); got != workers*perWorker {
		t.Errorf("hits = %d, want %d", got, workers*perWorker)
	}
}
