package i18n

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		key  string
		want Language
	}{
		{"english", English},
		{"chinese", Chinese},
		{"", Chinese},
		{"klingon", Chinese},
		{"English", Chinese}, // stored keys are lowercase
	}
	for _, c := range cases {
		if got := Parse(c.key); got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, l := range All() {
		if got := Parse(l.Key()); got != l {
			t.Errorf("Parse(%q) = %v, want %v", l.Key(), got, l)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := Chinese.DisplayName(); got != "中文" {
		t.Errorf("Chinese.DisplayName() = %q", got)
	}
	if got := English.DisplayName(); got != "English" {
		t.Errorf("English.DisplayName() = %q", got)
	}
}

func TestStringsTableSelection(t *testing.T) {
	if Chinese.Strings().NavMain != "主页" {
		t.Error("Chinese table not selected for Chinese")
	}
	if English.Strings().NavMain != "Main" {
		t.Error("English table not selected for English")
	}
}

func TestPresetDisplayName(t *testing.T) {
	s := English.Strings()
	cases := []struct {
		key  string
		want string
	}{
		{"casual", "Casual"},
		{"business", "Business"},
		{"academic", "Academic"},
		{"creative", "Creative"},
		{"pirate", "pirate"}, // user-defined keys are echoed
	}
	for _, c := range cases {
		if got := s.PresetDisplayName(c.key); got != c.want {
			t.Errorf("PresetDisplayName(%q) = %q, want %q", c.key, got, c.want)
		}
	}
}
