package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"redline/internal/domain"
	"redline/internal/i18n"
)

func TestFormatCheckResultWithIssues(t *testing.T) {
	res := &domain.CheckResult{
		Issues: []domain.GrammarIssue{
			{Original: "She dont", Corrected: "She doesn't", Explanation: "缺少助动词", Rule: "主谓一致"},
			{Original: "a apple", Corrected: "an apple", Explanation: "元音前用 an", Rule: "冠词"},
		},
		CorrectedText: "She doesn't like an apple.",
	}

	got := FormatCheckResult(i18n.Chinese.Strings(), res)

	want := "发现 2 个问题:\n\n" +
		"1. \"She dont\" -> \"She doesn't\"\n   缺少助动词 (主谓一致)\n\n" +
		"2. \"a apple\" -> \"an apple\"\n   元音前用 an (冠词)\n\n" +
		"---\n修正后的文本:\n\nShe doesn't like an apple."
	assert.Equal(t, want, got)
}

func TestFormatCheckResultNoIssues(t *testing.T) {
	res := &domain.CheckResult{
		Issues:        []domain.GrammarIssue{},
		CorrectedText: "Hello world.",
	}

	got := FormatCheckResult(i18n.English.Strings(), res)

	want := "[OK] No grammar issues found!\n\n---\nCorrected text:\n\nHello world."
	assert.Equal(t, want, got)
}

func TestFormatCheckResultQuotesStayVerbatim(t *testing.T) {
	// The report uses plain quotes around the fragments; fragments that
	// themselves contain quotes must not be escaped.
	res := &domain.CheckResult{
		Issues: []domain.GrammarIssue{
			{Original: `say "hi"`, Corrected: `say "hello"`, Explanation: "word choice", Rule: "style"},
		},
		CorrectedText: `say "hello"`,
	}

	got := FormatCheckResult(i18n.English.Strings(), res)
	assert.Contains(t, got, "1. \"say \"hi\"\" -> \"say \"hello\"\"\n")
}

func TestFormatEnhanceResult(t *testing.T) {
	res := &domain.EnhanceResult{
		EnhancedText: "Could you please send me the file?",
		ChangesMade:  []string{"Added polite framing", "Expanded contractions"},
	}

	got := FormatEnhanceResult(i18n.English.Strings(), res)

	want := "Enhanced text:\n\nCould you please send me the file?\n\n---\nChanges made:\n\n" +
		"* Added polite framing\n* Expanded contractions\n"
	assert.Equal(t, want, got)
}

func TestFormatEnhanceResultNoChanges(t *testing.T) {
	res := &domain.EnhanceResult{EnhancedText: "已经很好了", ChangesMade: []string{}}

	got := FormatEnhanceResult(i18n.Chinese.Strings(), res)

	want := "润色后的文本:\n\n已经很好了\n\n---\n修改说明:\n\n"
	assert.Equal(t, want, got)
}

func TestFormatError(t *testing.T) {
	err := errors.New("gemini api error (429): quota exceeded")

	assert.Equal(t, "错误: gemini api error (429): quota exceeded",
		FormatError(i18n.Chinese.Strings(), err))
	assert.Equal(t, "Error: gemini api error (429): quota exceeded",
		FormatError(i18n.English.Strings(), err))
}
