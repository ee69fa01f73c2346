package checks

import (
	"fmt"
	"strings"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// AvoidMotifs rejects barcodes that contain any of the listed motifs.
// Matching is case-insensitive.
type AvoidMotifs struct {
	motifs []string
}

// NewAvoidMotifs creates a checker for the given motifs. Empty motifs are dropped.
func NewAvoidMotifs(motifs []string) AvoidMotifs {
	return AvoidMotifs{motifs: normalizeMotifs(motifs)}
}

// Name returns "avoid_seqs".
func (AvoidMotifs) Name() string { return "avoid_seqs" }

// Check rejects the candidate on the first motif found.
func (c AvoidMotifs) Check(candidate domain.Barcode, _ []domain.Pair) (bool, string) {
	s := string(candidate.Upper())
	for _, m := range c.motifs {
		if strings.Contains(s, m) {
			return false, fmt.Sprintf("contains avoided sequence %s", m)
		}
	}
	return true, ""
}

// Junction checks the windows where the barcode meets its forward flank
// and its forward template-binding region. A motif is only counted when it
// spans the junction; motifs wholly inside either part belong to other checks.
type Junction struct {
	Flank          string
	Template       string
	Motifs         []string
	HomopolymerMax int // 0 disables the run limit
}

// NewJunction creates a junction checker.
func NewJunction(flank, template string, motifs []string, homopolymerMax int) Junction {
	return Junction{
		Flank:          strings.ToUpper(flank),
		Template:       strings.ToUpper(template),
		Motifs:         normalizeMotifs(motifs),
		HomopolymerMax: homopolymerMax,
	}
}

// Name returns "junction".
func (Junction) Name() string { return "junction" }

// Check rejects candidates that create an avoided motif or an over-long run
// across either junction.
func (c Junction) Check(candidate domain.Barcode, _ []domain.Pair) (bool, string) {
	bc := string(candidate.Upper())
	sides := []struct {
		name        string
		left, right string
	}{
		{"flank", c.Flank, bc},
		{"template", bc, c.Template},
	}
	for _, side := range sides {
		if side.left == "" || side.right == "" {
			continue
		}
		for _, m := range c.Motifs {
			if spansJunction(side.left, side.right, m) {
				return false, fmt.Sprintf("avoided sequence %s at %s junction", m, side.name)
			}
		}
		if c.HomopolymerMax > 0 {
			if run := junctionRun(side.left, side.right); run > c.HomopolymerMax {
				return false, fmt.Sprintf("homopolymer run %d at %s junction exceeds %d", run, side.name, c.HomopolymerMax)
			}
		}
	}
	return true, ""
}

// spansJunction reports whether motif occurs in left+right at a position that
// includes at least one symbol from each side.
func spansJunction(left, right, motif string) bool {
	k := len(motif)
	if k < 2 {
		return false
	}
	lo := len(left) - (k - 1)
	if lo < 0 {
		lo = 0
	}
	hi := len(right)
	if hi > k-1 {
		hi = k - 1
	}
	window := left[lo:] + right[:hi]
	return strings.Contains(window, motif)
}

// junctionRun returns the length of the run that crosses the junction, or 0
// if the symbols on either side differ.
func junctionRun(left, right string) int {
	if left[len(left)-1] != right[0] {
		return 0
	}
	sym := right[0]
	n := 0
	for i := len(left) - 1; i >= 0 && left[i] == sym; i-- {
		n++
	}
	for i := 0; i < len(right) && right[i] == sym; i++ {
		n++
	}
	return n
}

func normalizeMotifs(motifs []string) []string {
	out := make([]string, 0, len(motifs))
	for _, m := range motifs {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

var (
	_ ports.Checker = AvoidMotifs{}
	_ ports.Checker = Junction{}
)
