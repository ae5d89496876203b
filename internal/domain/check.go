package domain

// GrammarIssue is one problem the model found in the input text.
type GrammarIssue struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
	Rule        string `json:"rule"`
}

// CheckResult is the structured reply of a grammar check. Issues is never
// nil; Summary is optional and ignored by rendering.
type CheckResult struct {
	Issues        []GrammarIssue `json:"issues"`
	CorrectedText string         `json:"corrected_text"`
	Summary       string         `json:"summary,omitempty"`
}
