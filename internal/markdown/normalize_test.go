package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain content unchanged",
			input: "# Title\n\nBody text.",
			want:  "# Title\n\nBody text.",
		},
		{
			name:  "literal escaped newlines",
			input: `line one\nline two\rline three\r\nline four`,
			want:  "line one\nline two\nline three\nline four",
		},
		{
			name:  "tagged fence stripped",
			input: "```markdown\nHELLO\n```",
			want:  "HELLO",
		},
		{
			name:  "untagged fence stripped",
			input: "```\n# Doc\n\ncontent\n```",
			want:  "# Doc\n\ncontent",
		},
		{
			name:  "fence with surrounding whitespace",
			input: "\n\n```markdown\nbody\n```\n",
			want:  "body",
		},
		{
			name:  "inner fence kept when not wrapping whole content",
			input: "intro\n```go\ncode\n```",
			want:  "intro\n```go\ncode\n```",
		},
		{
			name:  "escaped newlines around fence interior",
			input: "```markdown" + `\n` + "HELLO" + `\n` + "```",
			want:  "HELLO",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		`escaped\nnewline`,
		"```markdown\nHELLO\n```",
		"```\nbody\n```",
		"intro with ``` stray fence marker",
		"",
		"  padded  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
