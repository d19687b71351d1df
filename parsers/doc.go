// Package parsers provides a tolerant CSV parser for property sheets.
//
// The sheets come from several sources (exported Google Sheets, user
// uploads) and are not strict RFC 4180: quoting is used only to protect
// commas inside a field, and doubled quotes are not an escape sequence.
// ParseLine therefore treats a quote character purely as a toggle for
// quoted mode and never fails; it returns a best-effort split of the
// line, always including the final field.
//
// Parse turns a whole CSV text into header-keyed records:
//
//	records, err := parsers.Parse(csvText)
//	if err != nil {
//	    // fewer than two non-empty lines
//	}
//	for _, record := range records {
//	    fmt.Println(record["Address"])
//	}
//
// Header keys are trimmed and stripped of quote characters but keep
// their original case; alias resolution happens downstream.
package parsers
