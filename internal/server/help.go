package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed help/*.md
var helpFiles embed.FS

// renderHelp converts the embedded glossary to HTML.
func renderHelp() (template.HTML, error) {
	source, err := helpFiles.ReadFile("help/glossary.md")
	if err != nil {
		return "", fmt.Errorf("failed to read glossary: %w", err)
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render glossary: %w", err)
	}
	// The glossary is compiled into the binary, so its HTML is trusted.
	return template.HTML(buf.String()), nil
}
