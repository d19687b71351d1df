package properties

import (
	"strings"

	"property-dashboard/common"
	"property-dashboard/parsers"
)

// ValidateRows reports per-row problems in an uploaded CSV so the
// uploader can fix the sheet. Row numbers are 1-based counting the
// header row, matching what a spreadsheet shows. Rows flagged here are
// the ones ingestion will drop; validation never blocks the upload.
func ValidateRows(text string) []common.RecordValidationResult {
	records, err := parsers.Parse(text)
	if err != nil {
		return nil
	}

	var results []common.RecordValidationResult
	for i, record := range records {
		row := mapRecord(record)
		address := strings.TrimSpace(row.Fields[FieldAddress])
		apn := strings.TrimSpace(row.Fields[FieldAPN])
		phase := strings.TrimSpace(row.Fields[FieldPhase])

		result := common.RecordValidationResult{RowNumber: i + 2, Valid: true}

		if address == "" && apn == "" {
			result.AddError("address", "Row needs an address or an APN")
		}
		if strings.EqualFold(phase, "Delete") {
			result.AddError("phase", "Row is in the Delete phase and will be excluded")
		}

		if !result.Valid {
			results = append(results, result)
		}
	}

	return results
}
