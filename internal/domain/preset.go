package domain

// StylePreset describes a rewriting style for text enhancement. Name and
// Instructions go into the prompt; Tone and Formality are picker metadata.
type StylePreset struct {
	Name         string `json:"name" yaml:"name"`
	Tone         string `json:"tone" yaml:"tone"`
	Formality    string `json:"formality" yaml:"formality"`
	Instructions string `json:"instructions" yaml:"instructions"`
}
