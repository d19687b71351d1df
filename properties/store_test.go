package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ReplaceIsWholesale(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Empty())

	s.Replace([]Property{{ID: "a"}, {ID: "b"}})
	assert.False(t, s.Empty())
	assert.Len(t, s.Snapshot().Properties, 2)

	// A refresh replaces the collection, never patches it
	s.Replace([]Property{{ID: "c"}})
	snap := s.Snapshot()
	assert.Len(t, snap.Properties, 1)
	assert.Equal(t, "c", snap.Properties[0].ID)
	assert.False(t, snap.LastUpdated.IsZero())
}
