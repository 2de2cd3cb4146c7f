package engine

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Stats collects per-search counters.
type Stats struct {
	Nodes     uint64 // every position entered, leaves included
	Leaves    uint64
	Cutoffs   uint64
	LeafCache TableStats
	NodeCache TableStats
}

// MarshalZerologObject lets a Stats value be attached to a log event with
// Object("stats", s).
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("leaves", s.Leaves).
		Uint64("cutoffs", s.Cutoffs).
		Uint64("leaf_hits", s.LeafCache.Hits).
		Uint64("leaf_misses", s.LeafCache.Misses).
		Uint64("node_hits", s.NodeCache.Hits).
		Uint64("node_misses", s.NodeCache.Misses)
}

// Lines renders the counters as UCI "info string" lines.
func (s Stats) Lines() []string {
	return []string{
		"info string Search statistics:",
		fmt.Sprintf("info string   Nodes: %d", s.Nodes),
		fmt.Sprintf("info string   Leaves: %d", s.Leaves),
		fmt.Sprintf("info string   Cutoffs: %d", s.Cutoffs),
		fmt.Sprintf("info string   Leaf cache hits/misses: %d/%d", s.LeafCache.Hits, s.LeafCache.Misses),
		fmt.Sprintf("info string   Node cache hits/misses: %d/%d", s.NodeCache.Hits, s.NodeCache.Misses),
	}
}
