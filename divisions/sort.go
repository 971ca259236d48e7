package divisions

import "slices"

// SortKey derives the comparison key for a division path. Keys are
// compared element-wise, so a key function can remap individual path
// elements (for example to force a catch-all name to sort last) while
// leaving the rest in natural order.
type SortKey func(path []string) []string

// SortByPath returns a new slice of ids ordered by their path keys.
// The sort is stable, so divisions with equal keys keep input order.
// A nil key compares paths as-is.
func SortByPath(f *Forest, ids []ID, key SortKey) []ID {
	if key == nil {
		key = func(path []string) []string { return path }
	}
	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(a, b ID) int {
		return slices.Compare(key(f.Node(a).Path), key(f.Node(b).Path))
	})
	return sorted
}

// Ranks maps a division to its 1-based position within the sorted list
// of its level. Ranks run level-global: one flat sequence per level,
// not restarted per parent.
type Ranks map[ID]int

// Number sorts every level list with SortByPath and assigns ranks
func Number(f *Forest, lists [][]ID, key SortKey) ([][]ID, Ranks) {
	sortedLists := make([][]ID, len(lists))
	ranks := make(Ranks)
	for i, ids := range lists {
		sortedLists[i] = SortByPath(f, ids, key)
		for pos, id := range sortedLists[i] {
			ranks[id] = pos + 1
		}
	}
	return sortedLists, ranks
}
