package app

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/bft-labs/barcodegen/internal/domain"
)

// Digest returns a BLAKE2b-256 hex digest over the ordered pairs and
// failures of a result. Identical runs produce identical digests.
func Digest(res domain.Result) string {
	h, _ := blake2b.New256(nil)
	for _, p := range res.Pairs {
		h.Write([]byte("P\t"))
		h.Write([]byte(p.Forward))
		h.Write([]byte{'\t'})
		h.Write([]byte(p.Reverse))
		h.Write([]byte{'\n'})
	}
	for _, f := range res.Failures {
		h.Write([]byte("F\t"))
		h.Write([]byte(f.Barcode))
		h.Write([]byte{'\t'})
		h.Write([]byte(f.Reason))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
