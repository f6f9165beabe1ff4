package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStepClock_StartsAtEpoch(t *testing.T) {
	clock := NewStepClock(time.Second)
	assert.Equal(t, Epoch, clock.Now())
	assert.Equal(t, int64(1), clock.Reads())
}

func TestStepClock_AdvancesByStep(t *testing.T) {
	clock := NewStepClock(5 * time.Millisecond)

	first := clock.Now()
	second := clock.Now()
	third := clock.Now()

	assert.Equal(t, 5*time.Millisecond, second.Sub(first))
	assert.Equal(t, 5*time.Millisecond, third.Sub(second))
}

func TestStepClock_Reset(t *testing.T) {
	start := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)
	clock := NewStepClockAt(start, time.Minute)

	clock.Now()
	clock.Now()
	assert.Equal(t, int64(2), clock.Reads())

	clock.Reset()
	assert.Equal(t, int64(0), clock.Reads())
	assert.Equal(t, start, clock.Now())
}

func TestStepClock_ThreadSafe(t *testing.T) {
	clock := NewStepClock(time.Nanosecond)
	const numGoroutines = 50
	const callsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				clock.Now()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(numGoroutines*callsPerGoroutine), clock.Reads())
}

func TestSequentialIDGenerator(t *testing.T) {
	gen := NewSequentialIDGenerator("bench")
	assert.Equal(t, "bench-1", gen.Generate())
	assert.Equal(t, "bench-2", gen.Generate())

	assert.Equal(t, "run-1", NewSequentialIDGenerator("").Generate())
}
