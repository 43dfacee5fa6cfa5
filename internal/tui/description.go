package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour renderers are expensive to build; cache them by wrap width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderDescription renders a markdown description, falling back to the raw
// text when glamour fails. Returns "" for an empty description.
func renderDescription(description string, width int) string {
	if strings.TrimSpace(description) == "" {
		return ""
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return description
	}

	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}
