package rope

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Option configures a Rope at construction time. Options are applied in
// the order given to New or FromString.
type Option func(*config)

type config struct {
	secondaryMetric bool
	dosResistant    bool
	seed            uint64
	seedSet         bool
}

// WithSecondaryMetric enables the parallel UTF-16 code-unit metric
// (§4.7). Every leaf additionally tracks its WChars count and every
// forward entry's span carries it, at the cost of a little extra
// bookkeeping on each edit. Ropes built without this option return
// ErrSecondaryMetricDisabled from CharsToWChars/WCharsToChars and their
// insert/remove/replace wchar-offset variants.
func WithSecondaryMetric() Option {
	return func(c *config) { c.secondaryMetric = true }
}

// WithDeterministicSeed seeds the height generator with a fixed value,
// making the rope's internal skip-list shape (though never its content
// or observable behavior) reproducible across runs. Useful for tests
// and benchmarks that want stable allocation counts.
func WithDeterministicSeed(seed uint64) Option {
	return func(c *config) { c.seed, c.seedSet = seed, true }
}

// WithDOSResistantRNG seeds the height generator from crypto/rand
// instead of a fixed or caller-supplied seed, so that an adversary who
// can choose input strings cannot predict (and therefore cannot target)
// the rope's skip-list shape to force worst-case height distributions.
func WithDOSResistantRNG() Option {
	return func(c *config) { c.dosResistant = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) newRNG() *mrand.Rand {
	switch {
	case c.dosResistant:
		var seedBytes [16]byte
		if _, err := rand.Read(seedBytes[:]); err != nil {
			// crypto/rand is not expected to fail on any supported
			// platform; fall back to a fixed seed rather than panic.
			return mrand.New(mrand.NewPCG(0xC0FFEE, 0xD15EA5E))
		}
		s1 := binary.LittleEndian.Uint64(seedBytes[0:8])
		s2 := binary.LittleEndian.Uint64(seedBytes[8:16])
		return mrand.New(mrand.NewPCG(s1, s2))
	case c.seedSet:
		return mrand.New(mrand.NewPCG(c.seed, c.seed^0x9E3779B97F4A7C15))
	default:
		return mrand.New(mrand.NewPCG(1, 2))
	}
}
