package fetcher

import (
	"math/rand"
	"testing"
)

func TestPickIdentityDeterministicUnderSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		if got, want := PickIdentity(UserAgents, a), PickIdentity(UserAgents, b); got != want {
			t.Fatalf("iteration %d: %q != %q for identical seeds", i, got, want)
		}
	}
}

func TestPickIdentityStaysInPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := map[string]struct{}{}
	for _, ua := range UserAgents {
		pool[ua] = struct{}{}
	}

	for i := 0; i < 50; i++ {
		if _, ok := pool[PickIdentity(UserAgents, rng)]; !ok {
			t.Fatal("picked identity outside the pool")
		}
	}
}

func TestPickIdentityEmptyPool(t *testing.T) {
	if got := PickIdentity(nil, rand.New(rand.NewSource(1))); got != "" {
		t.Errorf("got %q; want empty string", got)
	}
}
