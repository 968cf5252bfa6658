// File: internal/services/reveal/render.go
package reveal

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

// RenderLine converts one answer line to HTML. A line that is entirely
// bold, like "**Svar**", becomes a heading block with a trailing colon;
// any other line gets its inline markdown rendered without the paragraph
// wrapper.
func RenderLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if isFullBold(trimmed) {
		title := strings.TrimSuffix(strings.TrimPrefix(trimmed, "**"), "**")
		title = strings.TrimSuffix(title, ":")
		return "<strong>" + title + ":</strong>"
	}

	var out bytes.Buffer
	if err := markdown.Convert([]byte(line), &out); err != nil {
		return line
	}
	html := strings.TrimSpace(out.String())
	html = strings.TrimPrefix(html, "<p>")
	html = strings.TrimSuffix(html, "</p>")
	return html
}

// RenderMessage renders a whole answer, one line per output element.
// Blank lines are dropped.
func RenderMessage(text string) []string {
	var rendered []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rendered = append(rendered, RenderLine(line))
	}
	return rendered
}

func isFullBold(line string) bool {
	return strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") &&
		len(line) > 4 && !strings.Contains(line[2:len(line)-2], "**")
}
