package session

import (
	"fmt"
	"strconv"
	"strings"

	"redline/internal/domain"
	"redline/internal/i18n"
)

// FormatCheckResult renders a check reply as the user-facing report. The
// layout is part of the product contract; exports and the snapshot tests
// depend on it byte for byte.
func FormatCheckResult(s *i18n.Strings, r *domain.CheckResult) string {
	var b strings.Builder
	if len(r.Issues) == 0 {
		b.WriteString(s.NoIssues)
		b.WriteString("\n\n")
	} else {
		b.WriteString(strings.ReplaceAll(s.FoundIssues, "{}", strconv.Itoa(len(r.Issues))))
		b.WriteString("\n\n")
		for i, issue := range r.Issues {
			fmt.Fprintf(&b, "%d. \"%s\" -> \"%s\"\n   %s (%s)\n\n",
				i+1, issue.Original, issue.Corrected, issue.Explanation, issue.Rule)
		}
	}
	b.WriteString("---\n")
	b.WriteString(s.CorrectedText)
	b.WriteString("\n\n")
	b.WriteString(r.CorrectedText)
	return b.String()
}

// FormatEnhanceResult renders an enhance reply: the rewritten text first,
// then the list of changes.
func FormatEnhanceResult(s *i18n.Strings, r *domain.EnhanceResult) string {
	var b strings.Builder
	b.WriteString(s.EnhancedText)
	b.WriteString("\n\n")
	b.WriteString(r.EnhancedText)
	b.WriteString("\n\n---\n")
	b.WriteString(s.ChangesMade)
	b.WriteString("\n\n")
	for _, change := range r.ChangesMade {
		fmt.Fprintf(&b, "* %s\n", change)
	}
	return b.String()
}

// FormatError flattens an operation failure for display. This is the only
// place the structured error taxonomy becomes text.
func FormatError(s *i18n.Strings, err error) string {
	return s.ErrorPrefix + ": " + err.Error()
}
