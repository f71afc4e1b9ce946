package harness_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpack/harness"
)

// TestBarrier_AllArriveBeforeRelease: no party may observe fewer
// arrivals than the party count after passing the barrier.
func TestBarrier_AllArriveBeforeRelease(t *testing.T) {
	const parties = 8
	const rounds = 5

	b := harness.NewBarrier(parties)
	var arrived int64
	var wg sync.WaitGroup
	for p := 0; p < parties; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				atomic.AddInt64(&arrived, 1)
				b.Await()
				require.GreaterOrEqual(t, atomic.LoadInt64(&arrived), int64((r+1)*parties))
			}
		}()
	}
	wg.Wait()
	require.EqualValues(t, rounds*parties, atomic.LoadInt64(&arrived))
}

// TestBarrier_SingleParty never blocks.
func TestBarrier_SingleParty(t *testing.T) {
	b := harness.NewBarrier(1)
	for i := 0; i < 3; i++ {
		b.Await()
	}
}

// TestBarrier_ClampsParties treats non-positive counts as one party.
func TestBarrier_ClampsParties(t *testing.T) {
	b := harness.NewBarrier(0)
	b.Await()
}
