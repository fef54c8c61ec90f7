package solver

import (
	"sort"
)

// The no-goods cache remembers partial placements that provably cannot be
// extended to a full solution. Placements are stored as sorted index sets
// in a trie, so membership is order-independent: if a recorded set is a
// subset of a prospective placement, that placement is futile no matter
// what order its markers were chosen in.
//
// Soundness: a recorded set P failed under constraints implied solely by
// its own markers, so any full solution would have to avoid containing P;
// rejecting supersets of P discards no solutions.
//
// Lifetime: one solve call. Entries are valid only for the board they were
// recorded against, so scoping the trie to a single invocation discharges
// cache invalidation entirely.

// nogoodNode is one trie level, keyed by ascending cell index.
type nogoodNode struct {
	children map[int]*nogoodNode
	terminal bool
}

// nogoodTrie is the cache root.
type nogoodTrie struct {
	root nogoodNode
}

func newNogoodTrie() *nogoodTrie {
	return &nogoodTrie{root: nogoodNode{children: make(map[int]*nogoodNode)}}
}

// insert records the partial placement as a dead end.
// Complexity: O(d log d) for depth d (copy + sort + walk).
func (t *nogoodTrie) insert(partial []int) {
	set := make([]int, len(partial))
	copy(set, partial)
	sort.Ints(set)

	cur := &t.root
	for _, idx := range set {
		child := cur.children[idx]
		if child == nil {
			child = &nogoodNode{children: make(map[int]*nogoodNode)}
			cur.children[idx] = child
		}
		cur = child
	}
	cur.terminal = true
}

// futile reports whether partial extended by next contains a recorded dead
// end as a subset.
func (t *nogoodTrie) futile(partial []int, next int) bool {
	set := make([]int, len(partial)+1)
	copy(set, partial)
	set[len(partial)] = next
	sort.Ints(set)

	return t.root.contains(set)
}

// contains reports whether some recorded set is a subset of set. Children
// are keyed by ascending index and set is sorted, so each element may
// either advance into a matching child or be skipped.
func (n *nogoodNode) contains(set []int) bool {
	if n.terminal {
		return true
	}
	for i, idx := range set {
		if child, ok := n.children[idx]; ok && child.contains(set[i+1:]) {
			return true
		}
	}

	return false
}
