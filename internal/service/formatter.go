package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const noResultsText = "Sorry, I couldn't find any results."

// FormatResult renders a query result as a plain-text table.
func FormatResult(result *QueryResult) string {
	if result == nil {
		return noResultsText
	}
	if result.Kind == ResultError {
		return result.Err
	}
	if len(result.Rows) == 0 {
		return noResultsText
	}

	columns := result.Columns
	if len(columns) == 0 {
		columns = result.Rows[0].Columns
	}
	header := strings.Join(columns, " | ")

	lines := make([]string, 0, len(result.Rows)+2)
	lines = append(lines, header, strings.Repeat("-", utf8.RuneCountInString(header)))
	for _, row := range result.Rows {
		values := make([]string, len(row.Values))
		for i, v := range row.Values {
			values[i] = formatValue(v)
		}
		lines = append(lines, strings.Join(values, " | "))
	}

	return strings.Join(lines, "\n")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		// shortest exact form: 79999.0 prints as 79999
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprint(val)
	}
}
