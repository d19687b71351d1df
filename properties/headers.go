package properties

import "strings"

// Canonical field keys produced by the header mapper. The sheets use
// several naming variants per column; everything funnels into these.
const (
	FieldAddress               = "address"
	FieldAPN                   = "apn"
	FieldCity                  = "city"
	FieldClient                = "client"
	FieldPhase                 = "phase"
	FieldPermit                = "permit"
	FieldProject               = "project"
	FieldStyle                 = "style"
	FieldPM                    = "pm"
	FieldPMName                = "pmName"
	FieldPMPhone               = "pmPhone"
	FieldPMEmail               = "pmEmail"
	FieldLot                   = "lot"
	FieldSqft                  = "sqft"
	FieldDraw                  = "draw"
	FieldNotes                 = "notes"
	FieldPermitSubmitted       = "permitSubmitted"
	FieldPermitIssued          = "permitIssued"
	FieldStartDate             = "startDate"
	FieldDeadline              = "deadline"
	FieldCertOfOcc             = "certOfOcc"
	FieldCompleted             = "completed"
	FieldDaysSinceStart        = "daysSinceStart"
	FieldDaysSinceSubmital     = "daysSinceSubmital"
	FieldWindowsOrdered        = "windowsOrdered"
	FieldDaysFromStartToFinish = "daysFromStartToFinish"
	FieldFinancialInstitution  = "financialInstitution"
	FieldLatestUpdates         = "latestUpdates"
	FieldDateCommentsAdded     = "dateCommentsAdded"
)

// headerAliases maps lowercase header text to canonical field keys.
// "pm" and "project manager" stay distinct on purpose: the construction
// sheet carries a short PM code while the upcoming sheet carries the
// manager's full name, and a single sheet may have both.
var headerAliases = map[string]string{
	"permit #":                  FieldPermit,
	"permit":                    FieldPermit,
	"project":                   FieldProject,
	"style":                     FieldStyle,
	"pm":                        FieldPM,
	"project manager":           FieldPMName,
	"pm phone number":           FieldPMPhone,
	"pm email":                  FieldPMEmail,
	"address":                   FieldAddress,
	"apn":                       FieldAPN,
	"city":                      FieldCity,
	"lot":                       FieldLot,
	"sq.ft.":                    FieldSqft,
	"sqft":                      FieldSqft,
	"square feet":               FieldSqft,
	"client":                    FieldClient,
	"phase":                     FieldPhase,
	"draw":                      FieldDraw,
	"notes":                     FieldNotes,
	"permit submitted":          FieldPermitSubmitted,
	"permit issued":             FieldPermitIssued,
	"start date":                FieldStartDate,
	"deadline":                  FieldDeadline,
	"cert of occ":               FieldCertOfOcc,
	"completed":                 FieldCompleted,
	"days since start":          FieldDaysSinceStart,
	"days since submital":       FieldDaysSinceSubmital,
	"windows ordered":           FieldWindowsOrdered,
	"days from start to finish": FieldDaysFromStartToFinish,
	"financial institution":     FieldFinancialInstitution,
	"latest updates":            FieldLatestUpdates,
	"date comments added":       FieldDateCommentsAdded,
}

// CanonicalHeader resolves a raw CSV header to its canonical field key.
// Matching is case-insensitive after trimming whitespace and quote
// characters. Headers outside the alias table pass through as their
// lowercased literal text with known=false; two distinct raw headers
// that lowercase to the same string will collide (accepted limitation).
func CanonicalHeader(raw string) (key string, known bool) {
	cleaned := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, `"`, "")))
	if canonical, ok := headerAliases[cleaned]; ok {
		return canonical, true
	}
	return cleaned, false
}
