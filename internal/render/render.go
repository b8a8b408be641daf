// Package render writes a static HTML snapshot of the product detail page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/product"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var (
	pageTemplate = template.Must(
		template.New("page.html.tmpl").
			Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
			ParseFS(templateFS, "templates/page.html.tmpl"),
	)

	// Raw HTML passes through goldmark; the UGC policy is what keeps it safe.
	markdown          = goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	descriptionPolicy = bluemonday.UGCPolicy()
)

type pageData struct {
	Loaded     bool
	Displayed  catalog.ImageRef
	Scrollable bool
	Thumbnails []gallery.Thumbnail
	Title      string
	Price      string
	// Description is escaped by the template; DescriptionHTML is set instead
	// when the description is rendered as Markdown.
	Description     string
	DescriptionHTML template.HTML
	Sizes           []option
	Color           string
	Swatches        []swatch
	Features        []string
	Expanded        bool
	ShowFade        bool
	ToggleLabel     string
}

type option struct {
	Key    string
	Active bool
}

type swatch struct {
	Key    string
	Active bool
	Style  template.CSS
}

type settings struct {
	markdownDescription bool
}

// Option customizes HTML.
type Option func(*settings)

// WithMarkdownDescription renders the description as sanitized Markdown
// instead of plain text.
func WithMarkdownDescription(enabled bool) Option {
	return func(s *settings) {
		s.markdownDescription = enabled
	}
}

// HTML writes the page for entry and gal to w. An unloaded entry produces the
// loading placeholder only. The description is written as plain text unless
// WithMarkdownDescription is given.
func HTML(w io.Writer, entry *product.Entry, gal *gallery.Gallery, opts ...Option) error {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := newPageData(entry, gal, cfg)
	if err != nil {
		return err
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render product page: %w", err)
	}
	return nil
}

func newPageData(entry *product.Entry, gal *gallery.Gallery, cfg settings) (pageData, error) {
	if entry == nil || !entry.Loaded() {
		return pageData{}, nil
	}

	data := pageData{
		Loaded:      true,
		Title:       entry.Title(),
		Price:       entry.Price(),
		Description: entry.Description(),
		Color:       entry.SelectedColor(),
		Features:    entry.Features(),
		Expanded:    entry.Expanded(),
		ShowFade:    entry.ShowFade(),
		ToggleLabel: entry.ToggleLabel(),
	}
	if cfg.markdownDescription {
		description, err := renderDescription(entry.Description())
		if err != nil {
			return pageData{}, err
		}
		data.DescriptionHTML = description
	}
	if gal != nil {
		data.Displayed = gal.Displayed()
		data.Scrollable = gal.Scrollable()
		data.Thumbnails = gal.Thumbnails()
	}

	for _, size := range entry.SizeOptions() {
		data.Sizes = append(data.Sizes, option{Key: size, Active: size == entry.SelectedSize()})
	}
	for _, sw := range entry.ColorOptions() {
		data.Swatches = append(data.Swatches, swatch{
			Key:    sw.Key,
			Active: sw.Active,
			Style:  swatchStyle(sw),
		})
	}
	return data, nil
}

// renderDescription converts the Markdown description to sanitized HTML.
func renderDescription(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	return template.HTML(strings.TrimSpace(descriptionPolicy.SanitizeReader(&buf).String())), nil
}

// swatchStyle builds the inline style of a color button. The background URL
// is already percent-encoded, so it cannot contain quotes or backslashes.
func swatchStyle(sw product.Swatch) template.CSS {
	background := "none"
	if sw.Background != "" {
		background = `url("` + sw.BackgroundURL + `")`
	}
	border := "1px solid #ddd"
	if sw.Active {
		border = "2px solid #ff6f00"
	}
	return template.CSS(fmt.Sprintf(
		"background-image: %s; background-size: cover; background-position: center; width: 40px; height: 40px; border: %s; border-radius: 4px; padding: 0; cursor: pointer; margin-right: 8px",
		background, border,
	))
}
