package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine tokenizes one input line into width float64 values. Fields are
// separated by any run of commas and/or spaces (sdis-stream.h's
// strtok(data, ", ") treats both characters as delimiters interchangeably);
// fields beyond width are ignored. ParseLine reports an error if the line
// does not contain at least width numeric fields, or if any of the first
// width fields fails to parse.
func ParseLine(line string, width int) ([]float64, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) < width {
		return nil, fmt.Errorf("cli: expected %d fields, got %d", width, len(fields))
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("cli: field %d (%q): %w", i, fields[i], err)
		}
		out[i] = v
	}
	return out, nil
}
