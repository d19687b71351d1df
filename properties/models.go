package properties

// Category is the portfolio bucket a property belongs to, derived
// entirely from its phase.
type Category string

const (
	CategoryConstruction Category = "Construction"
	CategoryCompleted    Category = "Completed"
	CategoryUpcoming     Category = "Upcoming"
	CategoryOther        Category = "Other"
)

// Property is the canonical record built from one CSV row. All sheet
// values stay strings; nothing is coerced at ingestion. Columns that
// have no canonical field are kept verbatim in Extra, keyed by their
// lowercased header text.
type Property struct {
	ID       string   `json:"id"`
	Address  string   `json:"address"`
	APN      string   `json:"apn"`
	City     string   `json:"city"`
	Phase    string   `json:"phase"`
	Type     string   `json:"type"`
	Category Category `json:"category"`

	Client                string `json:"client,omitempty"`
	Permit                string `json:"permit,omitempty"`
	Project               string `json:"project,omitempty"`
	Style                 string `json:"style,omitempty"`
	PM                    string `json:"pm,omitempty"`
	PMName                string `json:"pmName,omitempty"`
	PMPhone               string `json:"pmPhone,omitempty"`
	PMEmail               string `json:"pmEmail,omitempty"`
	Lot                   string `json:"lot,omitempty"`
	Sqft                  string `json:"sqft,omitempty"`
	Draw                  string `json:"draw,omitempty"`
	Notes                 string `json:"notes,omitempty"`
	PermitSubmitted       string `json:"permitSubmitted,omitempty"`
	PermitIssued          string `json:"permitIssued,omitempty"`
	StartDate             string `json:"startDate,omitempty"`
	Deadline              string `json:"deadline,omitempty"`
	CertOfOcc             string `json:"certOfOcc,omitempty"`
	Completed             string `json:"completed,omitempty"`
	DaysSinceStart        string `json:"daysSinceStart,omitempty"`
	DaysSinceSubmital     string `json:"daysSinceSubmital,omitempty"`
	WindowsOrdered        string `json:"windowsOrdered,omitempty"`
	DaysFromStartToFinish string `json:"daysFromStartToFinish,omitempty"`
	FinancialInstitution  string `json:"financialInstitution,omitempty"`
	LatestUpdates         string `json:"latestUpdates,omitempty"`
	DateCommentsAdded     string `json:"dateCommentsAdded,omitempty"`

	Extra map[string]string `json:"extra,omitempty"`
}
