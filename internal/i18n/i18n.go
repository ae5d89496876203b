package i18n

// Language selects the interface string table. Chinese is the default,
// matching the shipped configuration.
type Language int

const (
	Chinese Language = iota
	English
)

// Parse maps a stored preference value to a Language. Unknown values fall
// back to Chinese.
func Parse(key string) Language {
	if key == "english" {
		return English
	}
	return Chinese
}

// All lists the supported languages in picker order.
func All() []Language { return []Language{Chinese, English} }

// Key is the value persisted in settings.
func (l Language) Key() string {
	if l == English {
		return "english"
	}
	return "chinese"
}

// DisplayName is shown in the language picker. It is also the language
// parameter embedded in prompts, so the model answers in this language.
func (l Language) DisplayName() string {
	if l == English {
		return "English"
	}
	return "中文"
}

// Strings returns the static string table for the language.
func (l Language) Strings() *Strings {
	if l == English {
		return &english
	}
	return &chinese
}
