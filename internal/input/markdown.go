package input

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	linkPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// StripMarkdown renders markdown and keeps only its visible text, one line
// per block. Bare URLs are removed.
func StripMarkdown(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(rendered), ""))
	plain = linkPattern.ReplaceAllString(plain, "")

	var lines []string
	for _, line := range strings.Split(plain, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
