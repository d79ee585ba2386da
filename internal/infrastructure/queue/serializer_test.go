package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func startSerializer(t *testing.T) *Serializer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s := NewSerializer(0, zerolog.Nop())
	s.Start(ctx)
	return s
}

func TestSerializer_RunsInOrder(t *testing.T) {
	s := startSerializer(t)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		if err := s.Do(context.Background(), "append", func() { got = append(got, i) }); err != nil {
			t.Fatalf("do: %v", err)
		}
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected in-order execution, got %v", got)
		}
	}
}

func TestSerializer_NoOverlap(t *testing.T) {
	s := startSerializer(t)

	var (
		wg      sync.WaitGroup
		running int
		maxSeen int
		counter int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), "count", func() {
				running++
				if running > maxSeen {
					maxSeen = running
				}
				counter++
				running--
			})
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("expected at most one running operation, saw %d", maxSeen)
	}
	if counter != 50 {
		t.Fatalf("expected 50 operations, got %d", counter)
	}
}

func TestSerializer_CancelledBeforeStartIsSkipped(t *testing.T) {
	s := startSerializer(t)

	block := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = s.Do(context.Background(), "block", func() {
			close(started)
			<-block
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	ran := false
	result := make(chan error, 1)
	go func() {
		result <- s.Do(ctx, "late", func() { ran = true })
	}()
	cancel()
	close(block)

	if err := <-result; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected Canceled, got %v", err)
	}
	if ran {
		t.Fatalf("a cancelled operation must not run")
	}
}

func TestSerializer_StartedOperationReportsSuccess(t *testing.T) {
	s := startSerializer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	release := make(chan struct{})
	started := make(chan struct{})
	ran := false

	result := make(chan error, 1)
	go func() {
		result <- s.Do(ctx, "slow", func() {
			close(started)
			<-release
			ran = true
		})
	}()
	<-started
	cancel()
	close(release)

	if err := <-result; err != nil {
		t.Fatalf("expected success for an operation that ran, got %v", err)
	}
	if !ran {
		t.Fatalf("operation did not finish")
	}
}

func TestSerializer_PanicIsReported(t *testing.T) {
	s := startSerializer(t)

	if err := s.Do(context.Background(), "boom", func() { panic("boom") }); err == nil {
		t.Fatalf("expected an error from a panicking operation")
	}
	ran := false
	if err := s.Do(context.Background(), "after", func() { ran = true }); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !ran {
		t.Fatalf("worker stopped after panic")
	}
}

func TestSerializer_Stopped(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewSerializer(0, zerolog.Nop())
	s.Start(ctx)
	cancel()
	<-s.stopped

	err := s.Do(context.Background(), "late", func() {})
	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}
