package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Position renders where the displayed image sits in the gallery, as "n/total"
// followed by a bar.
type Position struct {
	bar   progress.Model
	total int
}

// NewPosition creates a position indicator for a gallery of total images.
func NewPosition(total int, width int) Position {
	bar := progress.New(progress.WithSolidFill("99"), progress.WithoutPercentage())
	bar.Width = width
	return Position{bar: bar, total: total}
}

// View renders the indicator for the 1-based position current.
func (p Position) View(current int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(current)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", current, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
