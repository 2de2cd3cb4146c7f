package engine

// TransTable memoizes leaf evaluations by position hash. Entries are never
// evicted and an insert always overwrites.
type TransTable struct {
	entries map[uint64]Score
	stats   TableStats
}

// TableStats counts lookups and stores against a table.
type TableStats struct {
	Hits   uint64
	Misses uint64
	Writes uint64
}

func NewTransTable() *TransTable {
	return &TransTable{entries: make(map[uint64]Score)}
}

func (tt *TransTable) Lookup(hash uint64) (Score, bool) {
	score, ok := tt.entries[hash]
	if ok {
		tt.stats.Hits++
	} else {
		tt.stats.Misses++
	}
	return score, ok
}

func (tt *TransTable) Insert(hash uint64, score Score) {
	tt.entries[hash] = score
	tt.stats.Writes++
}

func (tt *TransTable) Len() int { return len(tt.entries) }

func (tt *TransTable) Stats() TableStats { return tt.stats }

func (tt *TransTable) Clear() {
	tt.entries = make(map[uint64]Score)
	tt.stats = TableStats{}
}

const (
	// Flags
	UpperBoundFlag int8 = iota // search failed low, score <= alpha
	LowerBoundFlag             // search failed high, score >= beta
	ExactFlag
)

type nodeKey struct {
	hash     uint64
	depth    int
	maximize bool
}

// NodeEntry is a searched (not static) score together with what it proves.
type NodeEntry struct {
	Score Score
	Flag  int8
}

// NodeTable memoizes interior search results. Unlike TransTable, an entry is
// only valid for the exact depth and mover it was searched with, and a bound
// entry is only usable when it proves a cutoff for the current window.
type NodeTable struct {
	entries map[nodeKey]NodeEntry
	stats   TableStats
}

func NewNodeTable() *NodeTable {
	return &NodeTable{entries: make(map[nodeKey]NodeEntry)}
}

// lookup returns a score that can stand in for searching the node with the
// window [alpha, beta].
func (nt *NodeTable) lookup(hash uint64, depth int, maximize bool, alpha, beta Score) (Score, bool) {
	entry, found := nt.entries[nodeKey{hash, depth, maximize}]
	if !found {
		nt.stats.Misses++
		return 0, false
	}
	usable := false
	switch entry.Flag {
	case ExactFlag:
		usable = true
	case LowerBoundFlag:
		usable = entry.Score >= beta
	case UpperBoundFlag:
		usable = entry.Score <= alpha
	}
	if usable {
		nt.stats.Hits++
	} else {
		nt.stats.Misses++
	}
	return entry.Score, usable
}

// store classifies score against the window the node was entered with.
func (nt *NodeTable) store(hash uint64, depth int, maximize bool, alpha, beta, score Score) {
	flag := ExactFlag
	if score <= alpha {
		flag = UpperBoundFlag
	} else if score >= beta {
		flag = LowerBoundFlag
	}
	nt.entries[nodeKey{hash, depth, maximize}] = NodeEntry{Score: score, Flag: flag}
	nt.stats.Writes++
}

func (nt *NodeTable) Len() int { return len(nt.entries) }

func (nt *NodeTable) Stats() TableStats { return nt.stats }

func (nt *NodeTable) Clear() {
	nt.entries = make(map[nodeKey]NodeEntry)
	nt.stats = TableStats{}
}
