package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/product"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeViewport()
		return m, nil

	case spinner.TickMsg:
		// The spinner only animates the loading placeholder.
		if m.entry.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DocumentLoadedMsg:
		m.entry.Load(msg.Document)
		m.syncCursors()
		m.refreshViewport()
		return m, nil

	case DocumentFailedMsg:
		m.entry.Fail(msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// Nothing is selectable until the document arrives.
	if !m.entry.Loaded() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		m.focus = focusArea(wrap(int(m.focus)+1, int(focusCount)))

	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = focusArea(wrap(int(m.focus)-1, int(focusCount)))

	case key.Matches(msg, m.keys.Left):
		m.move(-1)

	case key.Matches(msg, m.keys.Right):
		m.move(1)

	case key.Matches(msg, m.keys.Activate):
		m.activate()

	case key.Matches(msg, m.keys.NextSize):
		sizes := m.entry.SizeOptions()
		next := wrap(indexOf(sizes, m.entry.SelectedSize())+1, len(sizes))
		if len(sizes) > 0 && m.entry.SelectSize(sizes[next]) {
			m.syncCursors()
		}

	case key.Matches(msg, m.keys.NextColor):
		swatches := m.entry.ColorOptions()
		if len(swatches) > 0 {
			next := wrap(m.activeColor(swatches)+1, len(swatches))
			if m.entry.SelectColor(swatches[next].Key) {
				m.colorCursor = next
			}
		}

	case key.Matches(msg, m.keys.Features):
		m.entry.ToggleExpanded()

	case key.Matches(msg, m.keys.AddToCart):
		m.entry.AddToCart()

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		return m, nil
	}

	m.refreshViewport()
	return m, nil
}

// move shifts the cursor of the focused row. In the thumbnail row the cursor is
// the displayed image itself.
func (m *Model) move(delta int) {
	switch m.focus {
	case focusSizes:
		m.sizeCursor = wrap(m.sizeCursor+delta, len(m.entry.SizeOptions()))
	case focusColors:
		m.colorCursor = wrap(m.colorCursor+delta, len(m.entry.ColorOptions()))
	case focusThumbnails:
		if delta < 0 {
			m.gallery.Prev()
		} else {
			m.gallery.Next()
		}
	}
}

func (m *Model) activate() {
	switch m.focus {
	case focusSizes:
		sizes := m.entry.SizeOptions()
		if m.sizeCursor < len(sizes) && m.entry.SelectSize(sizes[m.sizeCursor]) {
			m.syncCursors()
		}
	case focusColors:
		swatches := m.entry.ColorOptions()
		if m.colorCursor < len(swatches) {
			m.entry.SelectColor(swatches[m.colorCursor].Key)
		}
	case focusCart:
		m.entry.AddToCart()
	case focusFeatures:
		m.entry.ToggleExpanded()
	}
}

func (m Model) activeColor(swatches []product.Swatch) int {
	for i, sw := range swatches {
		if sw.Active {
			return i
		}
	}
	return 0
}

// resizeViewport fits the scrollable page between the top of the screen and
// the help footer.
func (m *Model) resizeViewport() {
	if m.height <= 0 {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lineCount(m.footerView()), 1)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.height <= 0 || !m.entry.Loaded() {
		return
	}
	m.viewport.SetContent(m.pageView())
}
