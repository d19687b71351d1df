package properties

import (
	"log"
	"strings"
	"time"
)

// SearchField scopes the text search to one property field, or all of
// the searchable ones.
type SearchField string

const (
	SearchAll     SearchField = "all"
	SearchAddress SearchField = "address"
	SearchCity    SearchField = "city"
	SearchAPN     SearchField = "apn"
	SearchClient  SearchField = "client"
)

// SearchFields lists the accepted searchField selector values.
var SearchFields = []string{
	string(SearchAll),
	string(SearchAddress),
	string(SearchCity),
	string(SearchAPN),
	string(SearchClient),
}

// FilterOptions combines the dashboard's list filters. Zero values mean
// "no filter" for each predicate; the deadline bounds are inclusive and
// independent of each other.
type FilterOptions struct {
	Search       string
	Field        SearchField
	Phase        string
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
}

// Filter applies the dashboard filters to a property collection in one
// pass: dedup first, then text search, then phase equality, then the
// deadline range. Surviving records keep their relative order. When a
// deadline bound is active, records whose deadline is empty or
// unparseable are excluded; absence of data never satisfies a range
// query.
func Filter(list []Property, opts FilterOptions) []Property {
	deduped := Dedup(list)
	out := make([]Property, 0, len(deduped))

	search := strings.ToLower(strings.TrimSpace(opts.Search))
	dateBounded := opts.DeadlineFrom != nil || opts.DeadlineTo != nil

	for _, p := range deduped {
		if search != "" && !matchesSearch(p, search, opts.Field) {
			continue
		}
		if opts.Phase != "" && p.Phase != opts.Phase {
			continue
		}
		if dateBounded && !withinDeadline(p, opts.DeadlineFrom, opts.DeadlineTo) {
			continue
		}
		out = append(out, p)
	}

	return out
}

func matchesSearch(p Property, search string, field SearchField) bool {
	contains := func(value string) bool {
		return strings.Contains(strings.ToLower(value), search)
	}

	switch field {
	case SearchAddress:
		return contains(p.Address)
	case SearchCity:
		return contains(p.City)
	case SearchAPN:
		return contains(p.APN)
	case SearchClient:
		return contains(p.Client)
	default:
		return contains(p.Address) || contains(p.APN) || contains(p.City) || contains(p.Client)
	}
}

func withinDeadline(p Property, from, to *time.Time) bool {
	deadline, ok := ParseDeadline(p.Deadline)
	if !ok {
		if p.Deadline != "" {
			log.Printf("Unparseable deadline %q on %s, excluded from date filter", p.Deadline, p.ID)
		}
		return false
	}

	if from != nil && deadline.Before(*from) {
		return false
	}
	if to != nil && deadline.After(*to) {
		return false
	}
	return true
}
