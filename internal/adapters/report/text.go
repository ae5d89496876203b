package report

import (
	"bytes"
	"strings"
)

type Text struct{}

func (Text) Format() string { return "txt" }

func (Text) Render(title, report string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(title)
	buf.WriteString("\n\n")
	buf.WriteString(report)
	if !strings.HasSuffix(report, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
