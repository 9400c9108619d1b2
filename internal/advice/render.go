package advice

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders advice bodies for the dashboard preview. GFM covers the tables
// and task lists agents paste in from their CRM notes.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderBody converts an advice item's markdown body to HTML.
func RenderBody(a *Advice) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(a.Body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}
