package debounce

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, h *Handle, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-h.Done():
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestStart_CompletesAfterDelay(t *testing.T) {
	h := Start(20 * time.Millisecond)

	require.True(t, waitDone(t, h, time.Second))
	assert.True(t, h.Fired())
}

func TestRefresh_PostponesCompletion(t *testing.T) {
	h := Start(40 * time.Millisecond)
	start := time.Now()

	for range 4 {
		time.Sleep(20 * time.Millisecond)
		h.Refresh()
	}

	require.True(t, waitDone(t, h, time.Second))
	assert.GreaterOrEqual(t, time.Since(start), 110*time.Millisecond)
}

func TestRefresh_ManyCallsSingleCompletion(t *testing.T) {
	h := Start(30 * time.Millisecond)

	var completions atomic.Int32
	go func() {
		<-h.Done()
		completions.Add(1)
	}()

	for range 50 {
		h.Refresh()
	}

	require.True(t, waitDone(t, h, time.Second))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), completions.Load())
}

func TestRefresh_AfterCompletionIsNoop(t *testing.T) {
	h := Start(5 * time.Millisecond)
	require.True(t, waitDone(t, h, time.Second))

	assert.NotPanics(t, func() { h.Refresh() })
	assert.True(t, h.Fired())
}

func TestStop_PreventsCompletion(t *testing.T) {
	h := Start(20 * time.Millisecond)

	assert.True(t, h.Stop())
	assert.False(t, waitDone(t, h, 60*time.Millisecond))
	assert.False(t, h.Fired())

	// second stop reports nothing to cancel
	assert.False(t, h.Stop())
}

func TestStop_AfterCompletion(t *testing.T) {
	h := Start(5 * time.Millisecond)
	require.True(t, waitDone(t, h, time.Second))

	assert.False(t, h.Stop())
}

func TestStart_NonPositiveDelay(t *testing.T) {
	h := Start(-time.Second)

	assert.True(t, waitDone(t, h, time.Second))
}

func TestWait_Completes(t *testing.T) {
	h := Start(10 * time.Millisecond)
	assert.True(t, h.Wait(context.Background()))
}

func TestWait_ReturnsOnStop(t *testing.T) {
	h := Start(time.Hour)

	result := make(chan bool, 1)
	go func() { result <- h.Wait(context.Background()) }()

	require.True(t, h.Stop())
	select {
	case fired := <-result:
		assert.False(t, fired)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Stop")
	}
}

func TestWait_ReturnsOnContext(t *testing.T) {
	h := Start(time.Hour)
	defer h.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.False(t, h.Wait(ctx))
}
