package properties

import (
	"encoding/csv"
	"io"
)

// exportHeaders is the fixed column set for CSV downloads, matching the
// master sheet layout closely enough to re-import.
var exportHeaders = []string{
	"Address", "APN", "City", "Phase", "Category", "Type", "Client",
	"Permit #", "Sq.Ft.", "Start Date", "Deadline", "Completed",
	"Financial Institution", "Notes",
}

// writeCSV streams the collection as CSV rows
func writeCSV(w io.Writer, list []Property) {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(exportHeaders)

	for _, p := range list {
		csvWriter.Write([]string{
			p.Address,
			p.APN,
			p.City,
			p.Phase,
			string(p.Category),
			p.Type,
			p.Client,
			p.Permit,
			p.Sqft,
			p.StartDate,
			p.Deadline,
			p.Completed,
			p.FinancialInstitution,
			p.Notes,
		})
	}

	csvWriter.Flush()
}
