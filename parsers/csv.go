package parsers

import (
	"errors"
	"strings"
)

// ErrTooFewLines is returned by Parse when the CSV has fewer than a
// header row and one data row.
var ErrTooFewLines = errors.New("CSV must have at least a header row and one data row")

// Record represents a single CSV row as a map of column name to value
type Record map[string]string

// ParseLine splits one CSV line into fields. A quote character toggles
// quoted mode; commas inside quotes are literal, commas outside quotes
// end the field. Quote characters themselves are not kept. Doubled
// quotes are not un-escaped. The final field is always emitted, so an
// empty line yields a single empty field.
func ParseLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			values = append(values, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	return append(values, current.String())
}

// Lines splits CSV text into non-blank lines
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Headers returns the cleaned header row of a CSV text: fields are
// trimmed and stripped of quote characters, original case preserved.
func Headers(text string) []string {
	lines := Lines(text)
	if len(lines) == 0 {
		return nil
	}
	return cleanFields(ParseLine(lines[0]))
}

// Parse turns CSV text into header-keyed records. Rows shorter than the
// header are padded with empty fields; rows longer than the header keep
// only the covered fields. Returns ErrTooFewLines when the text has no
// data rows.
func Parse(text string) ([]Record, error) {
	lines := Lines(text)
	if len(lines) < 2 {
		return nil, ErrTooFewLines
	}

	headers := cleanFields(ParseLine(lines[0]))

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := cleanFields(ParseLine(line))
		for len(values) < len(headers) {
			values = append(values, "")
		}

		record := make(Record, len(headers))
		for i, header := range headers {
			record[header] = values[i]
		}
		records = append(records, record)
	}

	return records, nil
}

// cleanFields trims each field and strips stray quote characters
func cleanFields(fields []string) []string {
	cleaned := make([]string, len(fields))
	for i, f := range fields {
		cleaned[i] = strings.ReplaceAll(strings.TrimSpace(f), `"`, "")
	}
	return cleaned
}
