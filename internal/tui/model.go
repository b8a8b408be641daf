package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/product"
)

// focusArea is the section that receives left/right/enter.
type focusArea int

const (
	focusSizes focusArea = iota
	focusColors
	focusThumbnails
	focusCart
	focusFeatures
	focusCount
)

func (f focusArea) String() string {
	switch f {
	case focusSizes:
		return "sizes"
	case focusColors:
		return "colors"
	case focusThumbnails:
		return "thumbnails"
	case focusCart:
		return "cart"
	case focusFeatures:
		return "features"
	default:
		return "unknown"
	}
}

// Model is the Bubbletea state of the product detail page.
type Model struct {
	entry   *product.Entry
	gallery *gallery.Gallery
	source  catalog.Source
	timeout time.Duration

	// Component state
	spinner  spinner.Model
	help     help.Model
	viewport viewport.Model
	keys     keyMap

	// UI state
	focus       focusArea
	sizeCursor  int
	colorCursor int

	// Dimensions
	width  int
	height int
}

// Options configures a Model.
type Options struct {
	Source  catalog.Source
	Timeout time.Duration
	Logger  *logger.Logger
}

// NewModel creates a model in the loading state. The entry's image list is
// pushed into the gallery after every change.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	log := opts.Logger
	if opts.Source != nil {
		log = log.WithFields(map[string]any{"location": opts.Source.Location()})
	}

	entry, gal := NewPage(log)

	return Model{
		entry:    entry,
		gallery:  gal,
		source:   opts.Source,
		timeout:  opts.Timeout,
		spinner:  s,
		help:     help.New(),
		viewport: viewport.New(0, 0),
		keys:     defaultKeyMap(),
		width:    80,
	}
}

// NewPage returns an unloaded entry wired to an empty gallery: every change
// that can alter the entry's image list is pushed into the gallery.
func NewPage(log *logger.Logger) (*product.Entry, *gallery.Gallery) {
	gal := gallery.New(nil)
	entry := product.NewEntry(
		product.WithLogger(log),
		product.WithListener(func(c product.Change) {
			if c.ImagesChanged() {
				gal.SetImages(c.Images)
			}
		}),
	)
	return entry, gal
}

// Init starts the spinner and the document fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.source != nil {
		cmds = append(cmds, fetchDocumentCmd(m.source, m.timeout))
	}
	return tea.Batch(cmds...)
}

// Entry exposes the product state.
func (m Model) Entry() *product.Entry {
	return m.entry
}

// Gallery exposes the image gallery.
func (m Model) Gallery() *gallery.Gallery {
	return m.gallery
}

// syncCursors points the picker cursors at the current selection.
func (m *Model) syncCursors() {
	m.sizeCursor = indexOf(m.entry.SizeOptions(), m.entry.SelectedSize())
	m.colorCursor = 0
	for i, sw := range m.entry.ColorOptions() {
		if sw.Active {
			m.colorCursor = i
			break
		}
	}
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
