package properties

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// CategoryMode selects which phase-to-category table is in effect. The
// source sheets were never consistent about the Delete and Unknown
// phases: the list views bucket them under Other while the overview
// counts them as Upcoming. Rather than silently picking one, the mode
// is explicit.
type CategoryMode int

const (
	// CategoryStrict maps Delete and Unknown to Other.
	CategoryStrict CategoryMode = iota
	// CategoryLenient maps Delete and Unknown to Upcoming.
	CategoryLenient
)

var (
	constructionPhases = map[string]bool{"Sheetrock": true, "Flatwork": true, "Roof": true, "Final": true}
	completedPhases    = map[string]bool{"Sold": true, "Listed": true, "Pending": true}
	upcomingPhases     = map[string]bool{"Design": true, "Hold": true, "Upcoming": true}
	lenientUpcoming    = map[string]bool{"Delete": true, "Unknown": true}
)

// CategoryForPhase derives the portfolio category from a phase string.
// Phase matching is exact (sheet values are already normalized casing);
// anything outside the tables falls into Other.
func CategoryForPhase(phase string, mode CategoryMode) Category {
	switch {
	case constructionPhases[phase]:
		return CategoryConstruction
	case completedPhases[phase]:
		return CategoryCompleted
	case upcomingPhases[phase]:
		return CategoryUpcoming
	case mode == CategoryLenient && lenientUpcoming[phase]:
		return CategoryUpcoming
	default:
		return CategoryOther
	}
}

// Row is one alias-mapped CSV row: canonical field key to value, plus
// a side table for columns the mapper did not recognize.
type Row struct {
	Fields map[string]string
	Extra  map[string]string
}

// BuildProperty turns an alias-mapped row into a canonical Property.
// Rows with neither an address nor an APN are rejected (ok=false); the
// reject check runs before id derivation, so the random-token fallback
// is only reachable when a caller bypasses the rejection rule.
func BuildProperty(row Row, mode CategoryMode) (Property, bool) {
	get := func(key string) string {
		return strings.TrimSpace(row.Fields[key])
	}

	address := get(FieldAddress)
	apn := get(FieldAPN)
	if address == "" && apn == "" {
		return Property{}, false
	}

	phase := get(FieldPhase)
	style := get(FieldStyle)
	project := get(FieldProject)

	propertyType := style
	if propertyType == "" {
		propertyType = project
	}
	if propertyType == "" {
		propertyType = "Residential"
	}

	p := Property{
		ID:       deriveID(apn, address),
		Address:  address,
		APN:      apn,
		City:     get(FieldCity),
		Phase:    phase,
		Type:     propertyType,
		Category: CategoryForPhase(phase, mode),

		Client:                get(FieldClient),
		Permit:                get(FieldPermit),
		Project:               project,
		Style:                 style,
		PM:                    get(FieldPM),
		PMName:                get(FieldPMName),
		PMPhone:               get(FieldPMPhone),
		PMEmail:               get(FieldPMEmail),
		Lot:                   get(FieldLot),
		Sqft:                  get(FieldSqft),
		Draw:                  get(FieldDraw),
		Notes:                 get(FieldNotes),
		PermitSubmitted:       get(FieldPermitSubmitted),
		PermitIssued:          get(FieldPermitIssued),
		StartDate:             get(FieldStartDate),
		Deadline:              get(FieldDeadline),
		CertOfOcc:             get(FieldCertOfOcc),
		Completed:             get(FieldCompleted),
		DaysSinceStart:        get(FieldDaysSinceStart),
		DaysSinceSubmital:     get(FieldDaysSinceSubmital),
		WindowsOrdered:        get(FieldWindowsOrdered),
		DaysFromStartToFinish: get(FieldDaysFromStartToFinish),
		FinancialInstitution:  get(FieldFinancialInstitution),
		LatestUpdates:         get(FieldLatestUpdates),
		DateCommentsAdded:     get(FieldDateCommentsAdded),
	}

	if len(row.Extra) > 0 {
		p.Extra = make(map[string]string, len(row.Extra))
		for k, v := range row.Extra {
			p.Extra[k] = strings.TrimSpace(v)
		}
	}

	return p, true
}

// deriveID builds the stable property id: the APN wins, the slugified
// address is the fallback, and a random token covers the (rejected
// upstream) case of neither.
func deriveID(apn, address string) string {
	switch {
	case apn != "":
		return "property-" + slug.Make(apn)
	case address != "":
		return "property-" + slug.Make(address)
	default:
		return "property-" + uuid.New().String()[:8]
	}
}

// IsDeleted reports whether a property sits in the Delete phase and
// must be excluded from the served collection.
func IsDeleted(p Property) bool {
	return strings.EqualFold(p.Phase, "Delete")
}
