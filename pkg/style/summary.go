// Package style renders run summaries for the terminal.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/tnoble/aliashdr/pkg/batch"
)

// Status types for summary lines
type Status string

const (
	StatusSuccess Status = "success" // Header parsed, alias can be generated
	StatusError   Status = "error"   // Header failed parsing
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderSummary renders the parse-phase report: a count of generatable
// aliases and, when present, the list of headers that failed with their
// failure reasons.
func RenderSummary(result batch.Result, deprecatedExt string) string {
	var b strings.Builder

	countLine := fmt.Sprintf("Can generate %d %s files.", result.Processed, deprecatedExt)
	b.WriteString(StatusStyle(StatusSuccess).Sprint(countLine))

	if len(result.Failures) > 0 {
		failLine := fmt.Sprintf(" Cannot generate %d %s files:", len(result.Failures), deprecatedExt)
		b.WriteString(StatusStyle(StatusError).Sprint(failLine))
		b.WriteString("\n\n")
		for _, failure := range result.Failures {
			b.WriteString(StatusStyle(StatusError).Sprint("✗ ") + failure.Path + "\n")
		}
	}

	return b.String()
}
