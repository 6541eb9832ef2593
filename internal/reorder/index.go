package reorder

// buildIndex folds the ordered collection into an id -> position map. The
// map is rebuilt whole whenever the collection changes and is never mutated
// in place.
func buildIndex(items []Item) map[string]int {
	index := make(map[string]int, len(items))
	for i, it := range items {
		index[it.Key()] = i
	}
	return index
}
