package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "plain text", input: "Hello, World!", expected: "Hello, World!"},
		{name: "ampersand", input: "Tom & Jerry", expected: "Tom &amp; Jerry"},
		{name: "angle brackets", input: "<script>", expected: "&lt;script&gt;"},
		{name: "double quote", input: `say "hello"`, expected: "say &quot;hello&quot;"},
		{name: "single quote", input: "it's", expected: "it&#39;s"},
		{name: "unicode", input: "héllo ✓", expected: "héllo ✓"},
		{name: "newline kept", input: "a\nb", expected: "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.expected {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "card", expected: "card"},
		{name: "quote", input: `a"b`, expected: "a&quot;b"},
		{name: "newline", input: "a\nb", expected: "a&#10;b"},
		{name: "carriage return", input: "a\rb", expected: "a&#13;b"},
		{name: "tab", input: "a\tb", expected: "a&#9;b"},
		{name: "ampersand", input: "x=1&y=2", expected: "x=1&amp;y=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.expected {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
