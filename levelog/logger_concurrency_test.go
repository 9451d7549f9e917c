package levelog

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_LogAndEdit verifies that the single lock keeps log calls,
// level edits, and sink changes from tearing each other: every emitted line
// must be complete and reflect one consistent level definition.
func TestConcurrency_LogAndEdit(t *testing.T) {
	l := New()
	var buf bytes.Buffer
	if _, err := l.Add(&buf, SinkConfig{Format: "{level.name} {level.no} {message}"}); err != nil {
		t.Fatalf("add sink: %v", err)
	}
	if err := l.SetLevel("job", WithNo(30)); err != nil {
		t.Fatalf("set level: %v", err)
	}

	const numGoroutines = 100
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines + 1)

	// One goroutine keeps editing "job" between two severities while the
	// rest log through it by name.
	go func() {
		defer wg.Done()
		for i := 0; i < numGoroutines*messagesPerGoroutine/10; i++ {
			no := 30
			if i%2 == 1 {
				no = 31
			}
			if err := l.SetLevel("job", WithNo(no)); err != nil {
				t.Errorf("edit level: %v", err)
				return
			}
		}
	}()
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				if err := l.Log("job", "goroutine-{0}-msg-{1}", id, j); err != nil {
					t.Errorf("log: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != numGoroutines*messagesPerGoroutine {
		t.Fatalf("expected %d lines, got %d", numGoroutines*messagesPerGoroutine, len(lines))
	}
	for _, line := range lines {
		// Either severity is fine, a torn mix is not.
		if !strings.HasPrefix(line, "job 30 goroutine-") && !strings.HasPrefix(line, "job 31 goroutine-") {
			t.Fatalf("garbled line: %q", line)
		}
		if !strings.Contains(line, "-msg-") {
			t.Fatalf("incomplete line: %q", line)
		}
	}
}

// TestConcurrency_AddRemoveSinks runs sink churn against a stream of log
// calls. Nothing may be dispatched to a sink after Remove returns.
func TestConcurrency_AddRemoveSinks(t *testing.T) {
	l := New()
	var keep bytes.Buffer
	if _, err := l.Add(&keep, SinkConfig{Format: "{message}"}); err != nil {
		t.Fatalf("add sink: %v", err)
	}

	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			var scratch bytes.Buffer
			id, err := l.Add(&scratch, SinkConfig{Format: "{message}"})
			if err != nil {
				t.Errorf("add: %v", err)
				return
			}
			if err := l.Remove(id); err != nil {
				t.Errorf("remove: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if err := l.Info("round {0}", i); err != nil {
				t.Errorf("log: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(keep.String()), "\n")
	if len(lines) != rounds {
		t.Fatalf("expected %d lines on the persistent sink, got %d", rounds, len(lines))
	}
}
