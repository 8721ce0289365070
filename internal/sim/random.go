package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// randSource is the subset of *rand.Rand the sampler needs.
type randSource interface {
	Float64() float64
}

// agentRNG derives an independent generator for one agent from the run seed.
// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
// #nosec G404
func agentRNG(seed int64, agent int) *rand.Rand {
	return rand.New(rand.NewPCG(seedWord(seed, agent, "a"), seedWord(seed, agent, "b")))
}

func seedWord(seed int64, agent int, salt string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d:%d:%s", seed, agent, salt)
	return h.Sum64()
}
