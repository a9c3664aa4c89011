package entity

import "github.com/google/uuid"

// Lineage traversal over PARENT edges. The parent graph is expected to
// be a DAG at all times; these helpers guard the insertion path and
// back the standalone invariant sweep.

// wouldCreateLineageCycle reports whether adding a PARENT edge from
// parent to child would make the parent their own ancestor. It walks
// the descendants of child depth-first with a visited set, so shared
// descendants (half-siblings through different houses) are traversed
// once and the walk terminates on any graph shape.
func (f *Family) wouldCreateLineageCycle(parentID, childID uuid.UUID) bool {
	visited := make(map[uuid.UUID]struct{})
	stack := []uuid.UUID{childID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == parentID {
			return true
		}
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for _, r := range f.relationships {
			if r.Type == RelationshipParent && r.FromMemberID == current {
				stack = append(stack, r.ToMemberID)
			}
		}
	}

	return false
}

// findLineageCycle scans the whole parent graph for a cycle and
// returns a member on one if found. Used by the invariant sweep; the
// insertion guard should make this unreachable, but the sweep does not
// trust the insertion order.
func (f *Family) findLineageCycle() (uuid.UUID, bool) {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[uuid.UUID]int, len(f.members))

	var visit func(id uuid.UUID) (uuid.UUID, bool)
	visit = func(id uuid.UUID) (uuid.UUID, bool) {
		state[id] = inProgress
		for _, r := range f.relationships {
			if r.Type != RelationshipParent || r.FromMemberID != id {
				continue
			}
			switch state[r.ToMemberID] {
			case inProgress:
				return r.ToMemberID, true
			case unvisited:
				if member, found := visit(r.ToMemberID); found {
					return member, true
				}
			}
		}
		state[id] = done

		return uuid.Nil, false
	}

	for id := range f.members {
		if state[id] == unvisited {
			if member, found := visit(id); found {
				return member, true
			}
		}
	}

	return uuid.Nil, false
}
