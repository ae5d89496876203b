package report

import (
	"bytes"
	"fmt"
	"strings"
)

type Markdown struct{}

func (Markdown) Format() string { return "md" }

// Render fences the result body so its line layout survives markdown
// rendering.
func (Markdown) Render(title, report string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", title)
	buf.WriteString("```text\n")
	buf.WriteString(report)
	if !strings.HasSuffix(report, "\n") {
		buf.WriteByte('\n')
	}
	buf.WriteString("```\n")
	return buf.Bytes(), nil
}
