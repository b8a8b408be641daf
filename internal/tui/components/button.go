package components

import "github.com/charmbracelet/lipgloss"

// ButtonVariant selects the colour scheme of a button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonLink
)

var (
	primaryButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("240")).
				Padding(0, 2)

	linkButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

// Button is a single-line control. Focused buttons are highlighted and carry
// a pointer so the focus stays visible without colour.
type Button struct {
	Label   string
	Variant ButtonVariant
	Focused bool
}

// NewButton creates a primary button.
func NewButton(label string) Button {
	return Button{Label: label}
}

// WithVariant sets the button variant.
func (b Button) WithVariant(variant ButtonVariant) Button {
	b.Variant = variant
	return b
}

// WithFocus sets the focus state.
func (b Button) WithFocus(focus bool) Button {
	b.Focused = focus
	return b
}

func (b Button) View() string {
	style := linkButtonStyle
	if b.Variant == ButtonPrimary {
		style = primaryButtonStyle
	}
	if b.Focused {
		style = style.Bold(true)
		if b.Variant == ButtonPrimary {
			style = style.Background(lipgloss.Color("208"))
		} else {
			style = style.Foreground(lipgloss.Color("208"))
		}
	}
	return style.Render(b.Label)
}
