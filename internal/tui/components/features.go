package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CollapsedFeatures is how many features stay visible while the list is
// collapsed.
const CollapsedFeatures = 3

var (
	featureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	fadedFeatureStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Faint(true)

	fadeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// FeatureList renders the bulleted features. Collapsed lists are clipped and
// end with a fade line; expanded lists show everything.
type FeatureList struct {
	Features    []string
	Expanded    bool
	ShowFade    bool
	ToggleLabel string
	Focused     bool
}

func (f FeatureList) View() string {
	visible := f.Features
	clipped := !f.Expanded && len(visible) > CollapsedFeatures
	if clipped {
		visible = visible[:CollapsedFeatures]
	}

	var b strings.Builder
	for i, feature := range visible {
		style := featureStyle
		if clipped && i == len(visible)-1 {
			style = fadedFeatureStyle
		}
		b.WriteString(style.Render("• " + feature))
		b.WriteString("\n")
	}
	if f.ShowFade {
		b.WriteString(fadeStyle.Render(strings.Repeat("░", 24)))
		b.WriteString("\n")
	}
	b.WriteString(NewButton(f.ToggleLabel).WithVariant(ButtonLink).WithFocus(f.Focused).View())
	return b.String()
}
