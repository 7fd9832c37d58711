package workerpool

import (
	"sync/atomic"
	"testing"
)

func TestSubmitWaitRunsEveryJob(t *testing.T) {
	p := New(4, 16)
	p.Run()
	defer p.HaltAndDestroy()

	var n int64
	const jobs = 200
	for i := 0; i < jobs; i++ {
		p.Submit(func() { atomic.AddInt64(&n, 1) })
	}
	p.Wait()

	if got := atomic.LoadInt64(&n); got != jobs {
		t.Fatalf("ran %d jobs, want %d", got, jobs)
	}
}

func TestSubmitBeforeRunPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic submitting before Run")
		}
	}()
	p := New(2, 4)
	p.Submit(func() {})
}

func TestHaltAndDestroyIsIdempotent(t *testing.T) {
	p := New(2, 4)
	p.Run()
	p.HaltAndDestroy()
	p.HaltAndDestroy()
}
