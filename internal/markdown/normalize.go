// Package markdown post-processes generation output into a canonical
// markdown string.
package markdown

import (
	"regexp"
	"strings"
)

// fenceRe matches content that is entirely wrapped in a single fenced code
// block, optionally tagged as markdown.
var fenceRe = regexp.MustCompile("(?s)^```(?:markdown)?\n(.*)\n```$")

var escapeReplacer = strings.NewReplacer(
	`\r\n`, "\n",
	`\n`, "\n",
	`\r`, "\n",
)

// Normalize converts raw generation output into canonical markdown:
// literal backslash-escaped line-break sequences become real line breaks,
// and a code fence wrapping the entire content is stripped. It never fails;
// the result may be empty.
func Normalize(raw string) string {
	out := escapeReplacer.Replace(raw)

	trimmed := strings.TrimSpace(out)
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return out
}
