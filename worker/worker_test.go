package worker

import (
	"sync"
	"testing"

	"go.uber.org/atomic"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var (
		wg    sync.WaitGroup
		count atomic.Int32
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		if !p.Submit(func() {
			defer wg.Done()
			count.Inc()
		}) {
			t.Fatal("expected open pool to accept tasks")
		}
	}
	wg.Wait()
	if count.Load() != 100 {
		t.Fatalf("expected 100 tasks to run, got %d", count.Load())
	}
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := New(1)
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	p.Submit(func() {
		defer wg.Done()
		panic("boom")
	})
	ran := atomic.NewBool(false)
	p.Submit(func() {
		defer wg.Done()
		ran.Store(true)
	})
	wg.Wait()
	if !ran.Load() {
		t.Fatal("expected the worker to keep running after a panic")
	}
}

func TestPoolClosed(t *testing.T) {
	p := New(0)
	p.Close()
	p.Close()
	if p.Submit(func() {}) {
		t.Fatal("expected closed pool to reject tasks")
	}
}
