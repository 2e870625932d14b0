package dtos

// ImportResult reports the outcome of a spreadsheet import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
