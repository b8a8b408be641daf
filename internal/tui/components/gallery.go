package components

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
)

const maxThumbLabel = 16

var (
	mainImageStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2).
			Align(lipgloss.Center)

	thumbStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeThumbStyle = thumbStyle.
				BorderForeground(lipgloss.Color("208")).
				Bold(true)

	scrollHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)

// GalleryView renders a gallery as a large preview above a thumbnail strip.
type GalleryView struct {
	Displayed  catalog.ImageRef
	Thumbnails []gallery.Thumbnail
	Scrollable bool
	Focused    bool
	Width      int
}

// NewGalleryView snapshots g for rendering.
func NewGalleryView(g *gallery.Gallery, width int, focused bool) GalleryView {
	return GalleryView{
		Displayed:  g.Displayed(),
		Thumbnails: g.Thumbnails(),
		Scrollable: g.Scrollable(),
		Focused:    focused,
		Width:      width,
	}
}

// View renders the gallery.
func (v GalleryView) View() string {
	width := v.Width
	if width < 24 {
		width = 24
	}

	active, position := 0, 0
	for _, th := range v.Thumbnails {
		if th.Active {
			active, position = th.Index, th.Index+1
			break
		}
	}

	style := mainImageStyle
	if v.Focused {
		style = style.BorderForeground(lipgloss.Color("208"))
	}
	main := style.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Center,
			"▣ "+ImageLabel(v.Displayed, width-8),
			NewPosition(len(v.Thumbnails), clamp(width-16, 4, 30)).View(position),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, v.strip(active))
}

func (v GalleryView) strip(active int) string {
	visible := v.Thumbnails
	start := 0
	if v.Scrollable {
		start, visible = window(v.Thumbnails, active, gallery.ThumbnailLimit)
	}

	chips := make([]string, 0, len(visible)+2)
	if v.Scrollable && start > 0 {
		chips = append(chips, scrollHintStyle.Render("‹"))
	}
	for _, th := range visible {
		chips = append(chips, ThumbnailChip(th))
	}
	if v.Scrollable && start+len(visible) < len(v.Thumbnails) {
		chips = append(chips, scrollHintStyle.Render("›"))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	if v.Scrollable {
		hint := fmt.Sprintf("scroll ←/→ · %d images", len(v.Thumbnails))
		row = lipgloss.JoinVertical(lipgloss.Left, row, scrollHintStyle.Render(hint))
	}
	return row
}

// ThumbnailChip renders one thumbnail; the active one is highlighted and
// carries a filled marker.
func ThumbnailChip(th gallery.Thumbnail) string {
	marker := "○"
	style := thumbStyle
	if th.Active {
		marker = "●"
		style = activeThumbStyle
	}
	return style.Render(fmt.Sprintf("%s %d %s", marker, th.Index+1, ImageLabel(th.Image, maxThumbLabel)))
}

// ImageLabel shortens an image ref to its base name, truncated to max runes.
func ImageLabel(ref catalog.ImageRef, max int) string {
	label := string(ref)
	if base := path.Base(label); base != "." && base != "/" {
		label = base
	}
	return Truncate(label, max)
}

// Truncate shortens s to max runes, ending with an ellipsis when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// TruncateLeft shortens s to max runes by dropping its head, so file names at
// the end of long paths stay readable.
func TruncateLeft(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-max+1:])
}

// window returns the slice of at most size items that keeps index visible,
// along with its start offset.
func window(items []gallery.Thumbnail, index, size int) (int, []gallery.Thumbnail) {
	if len(items) <= size {
		return 0, items
	}
	start := index - size/2
	start = clamp(start, 0, len(items)-size)
	return start, items[start : start+size]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
