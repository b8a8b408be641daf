package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/product"
	"github.com/alexisbeaulieu97/showcase/internal/tui/components"
)

const (
	loadingText = "Loading..."
	cartLabel   = "Add to Cart"

	// Below this width the gallery and the info panel are stacked.
	sideBySideWidth = 100
)

// View renders the current state of the model.
func (m Model) View() string {
	if !m.entry.Loaded() {
		return loadingStyle.Render(m.spinner.View() + " " + loadingText)
	}

	body := m.pageView()
	if m.height > 0 {
		body = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
}

func (m Model) pageView() string {
	return renderPage(m.entry, m.gallery, page{
		width:       m.width,
		focus:       m.focus,
		sizeCursor:  m.sizeCursor,
		colorCursor: m.colorCursor,
		interactive: true,
	})
}

func (m Model) footerView() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// RenderSnapshot renders the page without focus markers or key hints, as it
// would appear on the first frame after loading. An unloaded entry renders the
// loading placeholder text.
func RenderSnapshot(entry *product.Entry, gal *gallery.Gallery, width int) string {
	if !entry.Loaded() {
		return loadingText
	}
	return renderPage(entry, gal, page{width: width, sizeCursor: -1, colorCursor: -1})
}

type page struct {
	width       int
	focus       focusArea
	sizeCursor  int
	colorCursor int
	interactive bool
}

func renderPage(entry *product.Entry, gal *gallery.Gallery, p page) string {
	width := p.width
	if width <= 0 {
		width = 80
	}

	galleryWidth := width
	infoWidth := width
	sideBySide := width >= sideBySideWidth
	if sideBySide {
		galleryWidth = width * 2 / 5
		infoWidth = width - galleryWidth - 2
	}

	galleryView := components.NewGalleryView(gal, galleryWidth, p.interactive && p.focus == focusThumbnails).View()
	info := infoPanelStyle.Render(renderInfo(entry, p, infoWidth))

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, galleryView, "  ", info)
	}
	return lipgloss.JoinVertical(lipgloss.Left, galleryView, info)
}

func renderInfo(entry *product.Entry, p page, width int) string {
	sizeCursor, colorCursor := -1, -1
	if p.interactive && p.focus == focusSizes {
		sizeCursor = p.sizeCursor
	}
	if p.interactive && p.focus == focusColors {
		colorCursor = p.colorCursor
	}

	sections := []string{
		titleStyle.Render(entry.Title()),
		priceStyle.Render(entry.Price()),
		descriptionStyle.Width(max(width-4, 20)).Render(entry.Description()),

		heading(p, focusSizes, "Select Size:"),
		components.SizePicker{
			Sizes:  entry.SizeOptions(),
			Active: entry.SelectedSize(),
			Cursor: sizeCursor,
		}.View(),

		heading(p, focusColors, "Select Color: "+entry.SelectedColor()),
		components.ColorPicker{
			Swatches: entry.ColorOptions(),
			Cursor:   colorCursor,
			Width:    width,
		}.View(),

		lipgloss.JoinHorizontal(lipgloss.Bottom, heading(p, focusCart, ""), cartButton(p)),

		sectionStyle.Render(heading(p, focusFeatures, "Features")),
		components.FeatureList{
			Features:    entry.Features(),
			Expanded:    entry.Expanded(),
			ShowFade:    entry.ShowFade(),
			ToggleLabel: entry.ToggleLabel(),
			Focused:     p.interactive && p.focus == focusFeatures,
		}.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func heading(p page, area focusArea, label string) string {
	marker := "  "
	if p.interactive && p.focus == area {
		marker = focusMarkerStyle.Render("▸ ")
	}
	if label == "" {
		return marker
	}
	return marker + labelStyle.Render(label)
}

func cartButton(p page) string {
	button := components.NewButton(cartLabel).WithFocus(p.interactive && p.focus == focusCart)
	return cartStyle.Render(button.View())
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
