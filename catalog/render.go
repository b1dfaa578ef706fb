package catalog

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts markdown article bodies to HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// GoldmarkRenderer is the default Renderer. It is stateless, so one instance
// can be shared across requests without locking.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewGoldmarkRenderer builds a renderer with GFM extensions and automatic
// heading IDs. Raw HTML in article bodies is escaped, not passed through;
// news is authored by admins but rendered on the public site.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
