package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// builds the markdown shown for one generation result
func resultMarkdown(prompt string, result GenerateResult) string {
	var b strings.Builder

	if prompt != "" {
		fmt.Fprintf(&b, "> %s\n\n", prompt)
	}

	b.WriteString("## Code\n\n")

	if result.Code == "" {
		b.WriteString("_no code returned_\n\n")
	} else {
		fmt.Fprintf(&b, "```python\n%s\n```\n\n", result.Code)
	}

	if result.Explanation != "" {
		b.WriteString("## Explanation\n\n")
		b.WriteString(result.Explanation)
		b.WriteString("\n\n")
	}

	links := resourceLinks(result.Resources)
	if len(links) > 0 {
		b.WriteString("## Resources\n\n")

		for _, link := range links {
			fmt.Fprintf(&b, "- %s\n", link)
		}
	}

	return b.String()
}

// accepts a list or a single entry of {url,title} objects and bare strings,
// skipping anything else
func resourceLinks(resources any) []string {
	items, ok := resources.([]any)
	if !ok {
		items = []any{resources}
	}

	links := make([]string, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case string:
			links = append(links, v)

		case map[string]any:
			url, _ := v["url"].(string)
			title, _ := v["title"].(string)

			switch {
			case url != "" && title != "":
				links = append(links, fmt.Sprintf("[%s](%s)", title, url))
			case url != "":
				links = append(links, url)
			case title != "":
				links = append(links, title)
			}
		}
	}

	return links
}

// interprets a stored raw response the way the server does for display;
// text that is not JSON is shown as code
func storedResult(raw string) GenerateResult {
	var result GenerateResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return GenerateResult{Code: raw}
	}

	result.Code = strings.ReplaceAll(strings.TrimSpace(result.Code), `\n`, "\n")
	result.Explanation = strings.TrimSpace(result.Explanation)

	return result
}

func newRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		return nil
	}

	return renderer
}

// falls back to the raw markdown when no renderer is available
func render(renderer *glamour.TermRenderer, markdown string) string {
	if renderer == nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}
