// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-dashboard/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateDeclineRate reports whether a scenario rate describes a decline, i.e.
// lies in [0, 1). Rates outside the range are still simulated; callers surface
// this as a warning.
func ValidateDeclineRate(name string, rate float64) error {
	if rate < 0 || rate >= 1 {
		return fmt.Errorf("scenario %q decline rate %v is outside [0, 1)", name, rate)
	}
	return nil
}
