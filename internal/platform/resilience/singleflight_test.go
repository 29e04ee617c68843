package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	var flight SingleFlight
	var executions atomic.Int32

	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = flight.Do("board", func() (any, error) {
			executions.Add(1)
			close(started)
			<-release
			return 42, nil
		})
	}()

	<-started

	const waiters = 8
	var wg sync.WaitGroup
	sharedCount := atomic.Int32{}
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err, shared := flight.Do("board", func() (any, error) {
				executions.Add(1)
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if v != 42 {
				t.Errorf("unexpected value: %v", v)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected a single execution, got %d", got)
	}
	if got := sharedCount.Load(); got != waiters {
		t.Fatalf("expected %d shared results, got %d", waiters, got)
	}
}

func TestSingleFlight_DifferentKeysDoNotBlock(t *testing.T) {
	var flight SingleFlight

	v, err, shared := flight.Do("teams", func() (any, error) { return "a", nil })
	if err != nil || shared || v != "a" {
		t.Fatalf("unexpected result: v=%v err=%v shared=%t", v, err, shared)
	}

	v, err, shared = flight.Do("players", func() (any, error) { return "b", nil })
	if err != nil || shared || v != "b" {
		t.Fatalf("unexpected result: v=%v err=%v shared=%t", v, err, shared)
	}
}
