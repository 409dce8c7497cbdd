package batch

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero", 0, runtime.GOMAXPROCS(0)},
		{"negative", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.workers)
			defer p.Close()
			if got := p.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPool_Run(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	p.Run(jobs)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestPool_RunUnevenJobs(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func(), 20)
	for i := range jobs {
		jobs[i] = func() {
			if i%4 == 0 {
				time.Sleep(5 * time.Millisecond)
			}
			counter.Add(1)
		}
	}
	p.Run(jobs)

	if got := counter.Load(); got != 20 {
		t.Errorf("counter = %d, want 20", got)
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	var counter atomic.Int64
	p.Run([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if got := counter.Load(); got != 2 {
		t.Errorf("counter = %d, want 2", got)
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.Run(nil)
}

func TestMap(t *testing.T) {
	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}
	want := make([]int, len(in))
	for i, v := range in {
		want[i] = v * v
	}

	for _, workers := range []int{0, 1, 3, 100} {
		got := Map(workers, in, func(i, v int) int {
			if i != v {
				t.Errorf("Map(%d) passed index %d with value %d", workers, i, v)
			}
			return v * v
		})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Map(%d) mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestMap_Empty(t *testing.T) {
	got := Map(4, []string(nil), func(int, string) int { return 1 })
	if got == nil || len(got) != 0 {
		t.Errorf("Map(empty) = %v, want empty non-nil slice", got)
	}
}

func TestMap_SequentialRunsOnCaller(t *testing.T) {
	// With one worker, elements run in input order.
	var order []int
	Map(1, []int{0, 1, 2, 3}, func(i, _ int) struct{} {
		order = append(order, i)
		return struct{}{}
	})
	if diff := cmp.Diff([]int{0, 1, 2, 3}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}
