package table

import "strings"

const (
	// Delimiter separates fields on a line.
	Delimiter = ","

	// InterceptName is the header name of the synthetic intercept column.
	InterceptName = "intercept"

	// InterceptValue is the field value inserted into every data row.
	InterceptValue = "1"
)

// SplitRow splits line on Delimiter and inserts the synthetic intercept
// field right after the first field: InterceptName for the header,
// InterceptValue for data rows.
//
// The returned count excludes the first (response) field, so it equals the
// number of predictor columns the row describes, intercept included.
func SplitRow(line string, header bool) ([]string, int) {
	parts := strings.Split(line, Delimiter)

	fields := make([]string, 0, len(parts)+1)
	fields = append(fields, parts[0])
	if header {
		fields = append(fields, InterceptName)
	} else {
		fields = append(fields, InterceptValue)
	}
	fields = append(fields, parts[1:]...)

	return fields, len(fields) - 1
}
