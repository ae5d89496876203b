package prompt

import (
	"bytes"
	"text/template"

	"redline/internal/domain"
)

// Builder renders the prompts sent to the model. The interface language is
// injected at every site where the model produces prose, otherwise it
// defaults to answering in the language of the input text.
type Builder struct {
	check   *template.Template
	enhance *template.Template
}

func New() *Builder {
	return &Builder{
		check:   template.Must(template.New("check").Parse(checkTemplate)),
		enhance: template.Must(template.New("enhance").Parse(enhanceTemplate)),
	}
}

type checkData struct {
	Lang string
	Text string
}

type enhanceData struct {
	Style        string
	Instructions string
	Lang         string
	Text         string
}

func (b *Builder) CheckPrompt(text, lang string) string {
	return render(b.check, checkData{Lang: lang, Text: text})
}

func (b *Builder) EnhancePrompt(text string, preset domain.StylePreset, lang string) string {
	return render(b.enhance, enhanceData{
		Style:        preset.Name,
		Instructions: preset.Instructions,
		Lang:         lang,
		Text:         text,
	})
}

func render(tpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		// Static templates over plain string fields cannot fail to execute.
		panic(err)
	}
	return buf.String()
}

const checkTemplate = `Please act as a professional grammar checker. Check the following text for grammar, spelling, and punctuation errors.
The user's interface language is {{.Lang}}. Assessment and explanations MUST BE in {{.Lang}}.

For each issue found:
1.  Identify the original text.
2.  Provide the corrected text.
3.  Explain why it is an error (concise explanation in {{.Lang}}).
4.  Cite the grammar rule involved (in {{.Lang}}).

Return the result in strict JSON format matching this structure:
{
  "issues": [
    {
      "original": "substring with error",
      "corrected": "corrected substring",
      "explanation": "explanation in {{.Lang}}",
      "rule": "grammar rule in {{.Lang}}"
    }
  ],
  "corrected_text": "the full text with all corrections applied"
}

If there are no errors, return an empty "issues" list.

Text to check:
{{.Text}}`

const enhanceTemplate = `Please act as a professional writing editor. Enhance the following text to match the style: "{{.Style}}".
Description of style: {{.Instructions}}.
The user's interface language is {{.Lang}}. Explanations MUST BE in {{.Lang}}.

Analyze the text and rewrite it to better fit the requested style.
List the specific changes you made and explain why (in {{.Lang}}).

Return the result in strict JSON format matching this structure:
{
  "enhanced_text": "the rewritten text",
  "changes_made": [
    "Change 1: explanation in {{.Lang}}",
    "Change 2: explanation in {{.Lang}}"
  ]
}

Text to enhance:
{{.Text}}`
