package properties

import (
	"fmt"
	"log"
	"strings"
	"time"

	"property-dashboard/parsers"
)

// RequiredHeaders must be present (case-insensitively) in user-supplied
// CSV uploads before they reach ingestion.
var RequiredHeaders = []string{"Address", "APN", "Phase"}

// Result is the tagged outcome of an ingestion run. It is either a
// success carrying the property collection or a failure carrying a
// human-readable error; Ingest never panics and never returns partial
// mixes of the two.
type Result struct {
	Success     bool       `json:"success"`
	Properties  []Property `json:"properties"`
	TotalCount  int        `json:"totalCount"`
	LastUpdated time.Time  `json:"lastUpdated,omitzero"`
	Error       string     `json:"error,omitempty"`
}

// Ok builds a successful ingestion result
func Ok(props []Property) Result {
	return Result{
		Success:     true,
		Properties:  props,
		TotalCount:  len(props),
		LastUpdated: time.Now(),
	}
}

// Err builds a failed ingestion result with an empty collection
func Err(msg string) Result {
	return Result{Success: false, Properties: []Property{}, Error: msg}
}

// Ingest parses one or more CSV texts into the canonical deduplicated
// property collection. Rows without an address or APN are skipped, rows
// in the Delete phase are excluded, and duplicates (by APN, then
// address) keep their first occurrence. A text with fewer than two
// non-empty lines is skipped; the run fails only when no text yields
// any properties.
func Ingest(csvTexts []string, mode CategoryMode) Result {
	if len(csvTexts) == 0 {
		return Err("No CSV input provided")
	}

	var all []Property
	skipped := 0
	malformed := 0

	for i, text := range csvTexts {
		records, err := parsers.Parse(text)
		if err != nil {
			log.Printf("Skipping CSV input %d: %v", i+1, err)
			malformed++
			continue
		}

		for _, record := range records {
			p, ok := BuildProperty(mapRecord(record), mode)
			if !ok {
				skipped++
				continue
			}
			if IsDeleted(p) {
				continue
			}
			all = append(all, p)
		}
	}

	if skipped > 0 {
		log.Printf("Skipped %d rows without address or APN", skipped)
	}

	if len(all) == 0 {
		if malformed == len(csvTexts) {
			return Err("CSV file must have at least a header row and one data row")
		}
		return Err("No valid properties found in CSV input")
	}

	return Ok(Dedup(all))
}

// ValidateRequiredHeaders checks that an uploaded CSV carries the
// required columns. Returns the missing header names, empty when the
// upload is acceptable.
func ValidateRequiredHeaders(text string) []string {
	headers := parsers.Headers(text)

	var missing []string
	for _, required := range RequiredHeaders {
		found := false
		for _, h := range headers {
			if strings.EqualFold(h, required) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, required)
		}
	}
	return missing
}

// MissingHeadersError formats the upload rejection message for a set of
// missing required headers.
func MissingHeadersError(missing []string) string {
	return fmt.Sprintf("Missing required headers: %s", strings.Join(missing, ", "))
}

// mapRecord resolves every raw header in a parsed record through the
// alias table, splitting known columns from pass-through ones.
func mapRecord(record parsers.Record) Row {
	row := Row{Fields: make(map[string]string, len(record))}

	for rawHeader, value := range record {
		key, known := CanonicalHeader(rawHeader)
		if known {
			row.Fields[key] = value
			continue
		}
		if row.Extra == nil {
			row.Extra = make(map[string]string)
		}
		row.Extra[key] = value
	}

	return row
}
