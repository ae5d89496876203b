package domain

// EnhanceResult is the structured reply of a style rewrite. ChangesMade is
// never nil.
type EnhanceResult struct {
	EnhancedText string   `json:"enhanced_text"`
	ChangesMade  []string `json:"changes_made"`
}
