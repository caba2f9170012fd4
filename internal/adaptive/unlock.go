package adaptive

import "learnpath_backend/internal/curriculum"

// PropagateUnlock applies a completion event: the node joins the completed
// set and every node listing it as a prerequisite joins the unlocked set.
// This is deliberately a one-hop expansion: a dependent unlocks as soon as
// any single one of its prerequisites completes, without checking the
// others. Both returned sets contain their inputs, so repeated events can
// only grow them.
func PropagateUnlock(completed, unlocked []string, nodeID string) (newCompleted, newUnlocked []string) {
	newCompleted = appendUnique(completed, nodeID)
	newUnlocked = unlocked
	for _, dep := range curriculum.Dependents(nodeID) {
		newUnlocked = appendUnique(newUnlocked, dep)
	}
	return newCompleted, newUnlocked
}

func appendUnique(set []string, id string) []string {
	for _, s := range set {
		if s == id {
			return set
		}
	}
	out := make([]string, len(set), len(set)+1)
	copy(out, set)
	return append(out, id)
}
