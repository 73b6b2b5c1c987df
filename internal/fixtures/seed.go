package fixtures

import (
	"hash/fnv"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"
)

var (
	seedOnce sync.Once
	baseSeed uint64
)

// suiteSeed returns the run-wide seed. Set E2E_SEED to reproduce a run;
// otherwise the seed is taken from the clock and logged.
func suiteSeed() uint64 {
	seedOnce.Do(func() {
		if raw := os.Getenv("E2E_SEED"); raw != "" {
			if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
				baseSeed = parsed
				return
			}
			log.Printf("invalid E2E_SEED=%q, using clock seed", raw)
		}
		baseSeed = uint64(time.Now().UnixNano())
		log.Printf("seed for this run: %d (set E2E_SEED to reproduce)", baseSeed)
	})
	return baseSeed
}

// seedFor derives a per-test seed so parallel tests stay independent while
// the whole run remains reproducible from one suite seed.
func seedFor(t *testing.T) uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.Name()))
	return suiteSeed() ^ h.Sum64()
}

// randFor returns a seeded RNG private to the test; rand.Rand is not safe
// for concurrent use across tests.
func randFor(t *testing.T) *rand.Rand {
	return rand.New(rand.NewSource(int64(seedFor(t))))
}
