// ABOUTME: Landing page served at /, rendered once from embedded Markdown.
// ABOUTME: The Markdown is filled in with the endpoint and published tools, then converted by goldmark.

package server

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/2389/zaico-mcp/internal/mcp"
)

//go:embed landing.md
var landingMarkdown string

var landingMD = texttemplate.Must(texttemplate.New("landing.md").Parse(landingMarkdown))

var landingPage = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
code { background: #f3f3f3; padding: 0 .2rem; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type landingData struct {
	Name     string
	Version  string
	Endpoint string
	Tools    []mcp.DiscoveryTool
}

// renderLanding builds the complete HTML page.
func renderLanding(data landingData) ([]byte, error) {
	var md bytes.Buffer
	if err := landingMD.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("executing landing template: %w", err)
	}

	var body bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	if err := converter.Convert(md.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("converting landing markdown: %w", err)
	}

	var page bytes.Buffer
	err := landingPage.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{
		Title: data.Name,
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering landing page: %w", err)
	}
	return page.Bytes(), nil
}
