package domain

import "fmt"

// ValidateTaxonomyTree checks that every parent reference in parents points
// at a taxonomy in the same set and that no chain of parents loops. parents
// maps a taxonomy's public ID to its parent's public ID; roots map to 0.
func ValidateTaxonomyTree(parents map[int]int) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int]int, len(parents))

	for start := range parents {
		var path []int
		id := start
		for id != 0 && state[id] != done {
			if state[id] == visiting {
				return fmt.Errorf("%w: %v", ErrTaxonomyCycle, append(path, id))
			}
			parent, ok := parents[id]
			if !ok {
				return fmt.Errorf("%w: taxonomy %d references missing parent %d",
					ErrUnknownParent, path[len(path)-1], id)
			}
			state[id] = visiting
			path = append(path, id)
			id = parent
		}
		for _, visited := range path {
			state[visited] = done
		}
	}
	return nil
}
