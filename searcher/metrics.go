package searcher

import "time"

// SearchMetrics captures the work done by a single ChooseMove call.
type SearchMetrics struct {
	Duration     time.Duration
	Nodes        int
	LeafEvals    int
	AlphaCutoffs int
	BetaCutoffs  int
}

// collector accumulates counters during one search. The search is
// single-threaded, so plain ints suffice.
type collector struct {
	nodes        int
	leafEvals    int
	alphaCutoffs int
	betaCutoffs  int
}

func (c *collector) reset() {
	*c = collector{}
}

func (c *collector) complete(duration time.Duration) SearchMetrics {
	return SearchMetrics{
		Duration:     duration,
		Nodes:        c.nodes,
		LeafEvals:    c.leafEvals,
		AlphaCutoffs: c.alphaCutoffs,
		BetaCutoffs:  c.betaCutoffs,
	}
}
