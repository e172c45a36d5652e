package coercer

import (
	"math"
	"strconv"
	"strings"

	"evalreport/domain/core"
	"evalreport/domain/dataset"
)

// TypeCoercer handles deterministic numeric coercion of cells
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the coercion rules
type CoercionConfig struct {
	// DecimalComma accepts European formats such as "8,5" and "1.234,56".
	DecimalComma bool `json:"decimal_comma" yaml:"decimal_comma"`
}

// DefaultCoercionConfig returns strict parsing: plain decimal numbers only
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		DecimalComma: false,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// Numeric returns the cell's numeric value. Empty cells and text that does
// not parse are reported as missing.
func (c *TypeCoercer) Numeric(cell dataset.Cell) (float64, bool) {
	switch cell.Kind {
	case dataset.CellNumber:
		return cell.Number, isFinite(cell.Number)
	case dataset.CellText:
		return c.tryParseNumeric(cell.Raw)
	default:
		return 0, false
	}
}

// Strict parses the cell as a number and fails on anything else
func (c *TypeCoercer) Strict(cell dataset.Cell) (float64, error) {
	if v, ok := c.Numeric(cell); ok {
		return v, nil
	}
	return 0, core.NewNotNumericError(cell.Raw)
}

// tryParseNumeric attempts to parse as numeric with strict rules.
// NaN and infinities are rejected.
func (c *TypeCoercer) tryParseNumeric(strVal string) (float64, bool) {
	cleanVal := strings.TrimSpace(strVal)
	if cleanVal == "" {
		return 0, false
	}

	if c.config.DecimalComma {
		cleanVal = normalizeDecimalComma(cleanVal)
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || !isFinite(val) {
		return 0, false
	}
	return val, true
}

// normalizeDecimalComma rewrites European/French formats to the dotted form.
// "1.234,56" and "1 234,56" become "1234.56"; a lone comma is a decimal
// separator.
func normalizeDecimalComma(cleanVal string) string {
	hasComma := strings.Contains(cleanVal, ",")
	if !hasComma {
		return cleanVal
	}
	hasPeriod := strings.Contains(cleanVal, ".")
	hasSpace := strings.Contains(cleanVal, " ")

	if hasPeriod || hasSpace {
		commaIdx := strings.LastIndex(cleanVal, ",")
		afterComma := cleanVal[commaIdx+1:]
		if len(afterComma) <= 3 && isDigits(afterComma) {
			cleanVal = strings.ReplaceAll(cleanVal, ".", "")
			cleanVal = strings.ReplaceAll(cleanVal, " ", "")
			return strings.ReplaceAll(cleanVal, ",", ".")
		}
		// Comma is a thousands separator
		return strings.ReplaceAll(cleanVal, ",", "")
	}
	return strings.ReplaceAll(cleanVal, ",", ".")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
