package resilience

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight[string]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, _ := g.Do("club:napoli", func() (string, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "Napoli", nil
			})
			if err != nil || v != "Napoli" {
				t.Errorf("singleflight call failed: v=%q err=%v", v, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&counter))
	assert.Zero(t, g.InFlight())
}

func TestSingleFlight_PropagatesErrorAndForgetsKey(t *testing.T) {
	var g SingleFlight[int]
	boom := errors.New("boom")

	_, err, shared := g.Do("k", func() (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	assert.False(t, shared)

	v, err, _ := g.Do("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestSingleFlight_PanicForgetsKey(t *testing.T) {
	var g SingleFlight[int]

	_, err, _ := g.Do("k", func() (int, error) { panic("normalizer bug") })
	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "normalizer bug", panicErr.Value)
	assert.Zero(t, g.InFlight())

	called := false
	v, err, shared := g.Do("k", func() (int, error) {
		called = true
		return 42, nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 42, v)
	assert.False(t, shared)
}

func TestSingleFlight_PanicReachesWaiters(t *testing.T) {
	var g SingleFlight[int]
	release := make(chan struct{})

	leaderErr := make(chan error, 1)
	go func() {
		_, err, _ := g.Do("k", func() (int, error) {
			<-release
			panic("boom")
		})
		leaderErr <- err
	}()
	require.Eventually(t, func() bool { return g.InFlight() == 1 }, time.Second, time.Millisecond)

	waiterErr := make(chan error, 1)
	go func() {
		_, err, shared := g.Do("k", func() (int, error) { return 1, nil })
		assert.True(t, shared)
		waiterErr <- err
	}()
	require.Eventually(t, func() bool { return g.Waiters("k") == 1 }, time.Second, time.Millisecond)
	close(release)

	var panicErr *PanicError
	assert.ErrorAs(t, <-leaderErr, &panicErr)
	assert.ErrorAs(t, <-waiterErr, &panicErr)
	assert.Zero(t, g.InFlight())
}

func TestSingleFlight_DoContextCallerLeavesEarly(t *testing.T) {
	var g SingleFlight[string]
	release := make(chan struct{})

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err, _ := g.DoContext(leaderCtx, "club:milan", func() (string, error) {
			<-release
			return "AC Milan", nil
		})
		leaderErr <- err
	}()
	require.Eventually(t, func() bool { return g.InFlight() == 1 }, time.Second, time.Millisecond)

	type result struct {
		v      string
		err    error
		shared bool
	}
	waiter := make(chan result, 1)
	go func() {
		v, err, shared := g.DoContext(context.Background(), "club:milan", func() (string, error) {
			return "unused", nil
		})
		waiter <- result{v, err, shared}
	}()
	require.Eventually(t, func() bool { return g.Waiters("club:milan") == 1 }, time.Second, time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	got := <-waiter
	require.NoError(t, got.err)
	assert.Equal(t, "AC Milan", got.v)
	assert.True(t, got.shared)
	assert.Eventually(t, func() bool { return g.InFlight() == 0 }, time.Second, time.Millisecond)
}
