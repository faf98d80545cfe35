// Package render turns the free text entered by the admins into HTML for the public pages
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML inside the text is dropped - goldmark only passes it through with html.WithUnsafe
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown converts text to safe HTML. Single line breaks are kept as <br>
func Markdown(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		// Convert only fails when writing to the buffer fails
		return ""
	}
	return buf.String()
}
