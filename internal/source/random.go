package source

import (
	"encoding/binary"
	"math/rand"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed int64 = 42

// Random draws barcodes of a fixed length from domain.Alphabet, sampling
// with replacement from a stream seeded once at construction.
//
// With Legacy set, the stream is re-seeded before every draw, so every
// candidate in a run is the same barcode. This reproduces the output of
// earlier releases and is off by default.
type Random struct {
	length int
	seed   int64
	legacy bool
	rng    *rand.Rand
}

// NewRandom creates a random barcode source.
func NewRandom(length int, seed int64, legacy bool) *Random {
	return &Random{
		length: length,
		seed:   seed,
		legacy: legacy,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next random barcode. The attempt index is not used.
func (r *Random) Next(int) domain.Barcode {
	if r.legacy {
		r.rng.Seed(r.seed)
	}
	var b strings.Builder
	b.Grow(r.length)
	for i := 0; i < r.length; i++ {
		b.WriteByte(domain.Alphabet[r.rng.Intn(len(domain.Alphabet))])
	}
	return domain.Barcode(b.String())
}

// ParseSeed converts a configured seed to an int64. Integers are used as-is;
// any other string is hashed with BLAKE2b-256 and the first eight bytes are
// used, so the same string always yields the same seed.
func ParseSeed(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSeed
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	sum := blake2b.Sum256([]byte(s))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
