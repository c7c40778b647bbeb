package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// helpStyle is fixed so the renderer never queries the terminal while the
// program owns it
const helpStyle = "dark"

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(helpStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders markdown at the given width. The raw text is
// returned when rendering fails.
func RenderMarkdown(markdown string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(out)
}

// RenderHelp renders the help overlay box
func RenderHelp(markdown string, width int) string {
	return HelpBoxStyle.Render(RenderMarkdown(markdown, width))
}
