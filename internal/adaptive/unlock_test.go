package adaptive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropagateUnlockOneHop(t *testing.T) {
	// ds101 requires both cs102 and math101, but completing cs102 alone
	// unlocks it: dependents expand one hop without checking the other
	// prerequisites.
	completed, unlocked := PropagateUnlock([]string{"cs101"}, []string{"cs101", "math101", "cs102"}, "cs102")

	assert.Contains(t, completed, "cs102")
	assert.Contains(t, unlocked, "ds101")
	assert.Contains(t, unlocked, "db101")
	assert.NotContains(t, unlocked, "algo201")
}

func TestPropagateUnlockMonotonic(t *testing.T) {
	completed := []string{}
	unlocked := []string{"cs101", "math101"}

	for _, nodeID := range []string{"cs101", "cs102", "cs102", "math101", "ds101"} {
		prevCompleted := append([]string(nil), completed...)
		prevUnlocked := append([]string(nil), unlocked...)

		completed, unlocked = PropagateUnlock(completed, unlocked, nodeID)

		for _, id := range prevCompleted {
			assert.Contains(t, completed, id)
		}
		for _, id := range prevUnlocked {
			assert.Contains(t, unlocked, id)
		}
	}

	assert.ElementsMatch(t, []string{"cs101", "cs102", "math101", "ds101"}, completed)
}

func TestPropagateUnlockIdempotent(t *testing.T) {
	c1, u1 := PropagateUnlock(nil, nil, "cs101")
	c2, u2 := PropagateUnlock(c1, u1, "cs101")

	assert.Equal(t, c1, c2)
	assert.Equal(t, u1, u2)
}

func TestPropagateUnlockInputsUntouched(t *testing.T) {
	completed := []string{"cs101"}
	unlocked := []string{"cs101"}
	PropagateUnlock(completed, unlocked, "cs102")

	assert.Equal(t, []string{"cs101"}, completed)
	assert.Equal(t, []string{"cs101"}, unlocked)
}
