package properties

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleProperties() []Property {
	return []Property{
		{ID: "a", APN: "111", Address: "2615 Woburn St", City: "Bellingham", Client: "GM", Phase: "Sheetrock", Deadline: "8/18/2025"},
		{ID: "b", APN: "222", Address: "2903 Hazelwood Dr", City: "Blaine", Client: "BB", Phase: "Sold", Deadline: "1/30/2024"},
		{ID: "c", APN: "333", Address: "Oceanside", City: "Blaine", Client: "Multiple", Phase: "Design", Deadline: ""},
		{ID: "d", APN: "444", Address: "1800 Cornwall Ave", City: "Bellingham", Client: "WECU", Phase: "Final", Deadline: "TBD"},
	}
}

func TestFilter_NoFilters(t *testing.T) {
	out := Filter(sampleProperties(), FilterOptions{})

	assert.Len(t, out, 4, "empty filters pass everything")
}

func TestFilter_SearchAllFields(t *testing.T) {
	out := Filter(sampleProperties(), FilterOptions{Search: "blaine", Field: SearchAll})

	assert.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "c", out[1].ID)
}

func TestFilter_SearchScopedField(t *testing.T) {
	// "111" appears in APN of a only
	out := Filter(sampleProperties(), FilterOptions{Search: "111", Field: SearchAPN})
	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)

	// Scoped to city, "woburn" matches nothing
	out = Filter(sampleProperties(), FilterOptions{Search: "woburn", Field: SearchCity})
	assert.Len(t, out, 0)
}

func TestFilter_Phase(t *testing.T) {
	out := Filter(sampleProperties(), FilterOptions{Phase: "Sold"})

	assert.Len(t, out, 1)
	assert.Equal(t, "b", out[0].ID)

	// Phase match is exact
	out = Filter(sampleProperties(), FilterOptions{Phase: "sold"})
	assert.Len(t, out, 0)
}

func TestFilter_DeadlineRangeStrict(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)

	out := Filter(sampleProperties(), FilterOptions{DeadlineFrom: &from, DeadlineTo: &to})

	// b is out of range; c (empty) and d (unparseable) are excluded by
	// the strict policy
	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilter_DeadlineBoundsInclusive(t *testing.T) {
	exact := time.Date(2025, 8, 18, 0, 0, 0, 0, time.Local)

	out := Filter(sampleProperties(), FilterOptions{DeadlineFrom: &exact, DeadlineTo: &exact})

	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilter_SingleBound(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	out := Filter(sampleProperties(), FilterOptions{DeadlineFrom: &from})

	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilter_DedupsFirst(t *testing.T) {
	list := append(sampleProperties(), Property{ID: "dup", APN: "111", Address: "Elsewhere", Phase: "Sheetrock"})

	out := Filter(list, FilterOptions{Phase: "Sheetrock"})

	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFilter_StableOrder(t *testing.T) {
	out := Filter(sampleProperties(), FilterOptions{Search: "bellingham", Field: SearchCity})

	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "d", out[1].ID)
}

func TestFilter_CombinedPredicates(t *testing.T) {
	out := Filter(sampleProperties(), FilterOptions{
		Search: "bellingham",
		Field:  SearchAll,
		Phase:  "Final",
	})

	assert.Len(t, out, 1)
	assert.Equal(t, "d", out[0].ID)
}
