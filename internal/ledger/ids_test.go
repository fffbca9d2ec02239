package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocateID(t *testing.T) {
	t.Run("first allocation starts at 1", func(t *testing.T) {
		assert.Equal(t, "ACC0001", allocateID("ACC", map[string]struct{}{}))
	})

	t.Run("skips used candidates", func(t *testing.T) {
		existing := map[string]struct{}{
			"ACC0001": {},
			"ACC0002": {},
		}
		assert.Equal(t, "ACC0003", allocateID("ACC", existing))
	})

	t.Run("freed numbers are reused", func(t *testing.T) {
		existing := map[string]struct{}{
			"ACC0001": {},
			"ACC0003": {},
		}
		assert.Equal(t, "ACC0002", allocateID("ACC", existing))
	})

	t.Run("independent prefixes do not collide", func(t *testing.T) {
		existing := map[string]struct{}{"ACC0001": {}}
		assert.Equal(t, "CRD0001", allocateID("CRD", existing))
	})
}
