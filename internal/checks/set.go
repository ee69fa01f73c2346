package checks

import "github.com/bft-labs/barcodegen/internal/ports"

// Options selects and parameterizes the checkers for a run.
// Zero limits mean "no limit" and leave the matching checker out.
type Options struct {
	GCMin       float64
	GCMax       float64
	MinDistance int

	// Extra enables the optional checkers below.
	Extra                  bool
	HomopolymerMax         int
	MaxHeteroStretch       int
	AvoidSeqs              []string
	AvoidAtJunctionSeqs    []string
	JunctionHomopolymerMax int
	FlankFwd               string
	TemplateFwd            string
}

// Build returns the checkers in evaluation order: GC, edit distance, then
// homopolymer, avoided motifs, junction and heterogeneous stretch when enabled.
func Build(opts Options) []ports.Checker {
	cs := []ports.Checker{
		NewGC(opts.GCMin, opts.GCMax),
		NewDistance(opts.MinDistance),
	}
	if !opts.Extra {
		return cs
	}
	if opts.HomopolymerMax > 0 {
		cs = append(cs, Homopolymer{Max: opts.HomopolymerMax})
	}
	if len(opts.AvoidSeqs) > 0 {
		cs = append(cs, NewAvoidMotifs(opts.AvoidSeqs))
	}
	if len(opts.AvoidAtJunctionSeqs) > 0 || opts.JunctionHomopolymerMax > 0 {
		cs = append(cs, NewJunction(opts.FlankFwd, opts.TemplateFwd, opts.AvoidAtJunctionSeqs, opts.JunctionHomopolymerMax))
	}
	if opts.MaxHeteroStretch > 0 {
		cs = append(cs, HeteroStretch{Max: opts.MaxHeteroStretch})
	}
	return cs
}

// Names returns the names of the given checkers in order.
func Names(cs []ports.Checker) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return names
}
