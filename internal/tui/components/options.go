package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/product"
)

var (
	chipStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activeChipStyle = chipStyle.
			BorderForeground(lipgloss.Color("208")).
			Foreground(lipgloss.Color("208")).
			Bold(true)

	cursorChipStyle = chipStyle.
			BorderForeground(lipgloss.Color("99"))

	swatchBackgroundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Faint(true)
)

// SizePicker renders one chip per size. Active marks the selected size, Cursor
// the chip under keyboard focus (-1 when the picker is not focused).
type SizePicker struct {
	Sizes  []string
	Active string
	Cursor int
}

func (p SizePicker) View() string {
	chips := make([]string, 0, len(p.Sizes))
	for i, size := range p.Sizes {
		style := chipStyle
		switch {
		case size == p.Active:
			style = activeChipStyle
		case i == p.Cursor:
			style = cursorChipStyle
		}
		chips = append(chips, style.Render(size))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// ColorPicker renders the color swatches of the selected size. Each swatch
// shows its key and the CSS background it would carry on a web page.
type ColorPicker struct {
	Swatches []product.Swatch
	Cursor   int
	Width    int
}

func (p ColorPicker) View() string {
	chips := make([]string, 0, len(p.Swatches))
	for i, sw := range p.Swatches {
		style := chipStyle
		switch {
		case sw.Active:
			style = activeChipStyle
		case i == p.Cursor:
			style = cursorChipStyle
		}
		bg := swatchBackgroundStyle.Render(TruncateLeft(sw.CSSBackground(), p.labelWidth()))
		chips = append(chips, style.Render(lipgloss.JoinVertical(lipgloss.Left, sw.Key, bg)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (p ColorPicker) labelWidth() int {
	if len(p.Swatches) == 0 || p.Width <= 0 {
		return 28
	}
	return clamp(p.Width/len(p.Swatches)-4, 8, 40)
}
