package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

type HTML struct{}

func (HTML) Format() string { return "html" }

func (HTML) Render(title, report string) ([]byte, error) {
	md, err := Markdown{}.Render(title, report)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := goldmark.Convert(md, &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
