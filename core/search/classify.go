package search

import (
	"strconv"
	"strings"
)

// numericFieldHints are substrings that suggest a column holds numbers even
// when the configuration carries no explicit type.
var numericFieldHints = []string{"amount", "total", "price", "cost", "quantity", "number"}

// IsNumeric decides whether the term should be compared numerically against
// the column. Explicit configuration wins, then field-name heuristics, then
// sniffing the term itself.
func IsNumeric(cfg ColumnConfig, term string) bool {
	if cfg.Type != "" {
		return cfg.Type == ColumnTypeNumber
	}

	field := strings.ToLower(cfg.Field)
	for _, hint := range numericFieldHints {
		if strings.Contains(field, hint) {
			return true
		}
	}

	_, err := strconv.ParseFloat(term, 64)
	return err == nil
}
