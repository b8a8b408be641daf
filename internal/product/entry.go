// Package product is the view-model behind the product detail panel. It owns
// the loaded document and the (size, color) selection, and derives the image
// list handed to the gallery.
package product

import (
	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

const (
	showMoreLabel = "Show More"
	showLessLabel = "Show Less"
)

// Entry holds the selection state of one product detail page.
type Entry struct {
	doc           *catalog.Document
	selectedSize  string
	selectedColor string
	currentImages []catalog.ImageRef
	expanded      bool

	log       *logger.Logger
	listeners []Listener
}

// Option configures an Entry.
type Option func(*Entry)

// WithLogger routes load failures and cart clicks to log.
func WithLogger(log *logger.Logger) Option {
	return func(e *Entry) {
		e.log = log
	}
}

// WithListener registers fn before any change is published.
func WithListener(fn Listener) Option {
	return func(e *Entry) {
		e.Subscribe(fn)
	}
}

// NewEntry returns an unloaded, collapsed entry.
func NewEntry(opts ...Option) *Entry {
	e := &Entry{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Loaded reports whether a document has been stored.
func (e *Entry) Loaded() bool {
	return e.doc != nil
}

// Document returns the loaded document, or nil.
func (e *Entry) Document() *catalog.Document {
	return e.doc
}

// Load stores doc and selects its first size and that size's first color.
// A nil document, or one without a default selection, leaves the entry unloaded.
func (e *Entry) Load(doc *catalog.Document) {
	size, color, ok := doc.DefaultSelection()
	if !ok {
		e.log.Warn("product document has no selectable size or color")
		return
	}

	e.doc = doc
	e.selectedSize = size
	e.selectedColor = color
	e.recompute()

	e.log.WithFields(map[string]any{
		"name":  doc.Name,
		"sizes": doc.Sizes.Len(),
		"size":  size,
		"color": color,
	}).Info("product document loaded")

	e.publish(ChangeLoaded)
}

// Fail records that the document could not be loaded. The entry stays in the
// loading state; there is no retry.
func (e *Entry) Fail(err error) {
	e.log.Error(err, "failed to load product document")
}

// SelectSize switches to size and resets the color to the size's first color.
// It returns false, leaving state untouched, when size is not offered.
func (e *Entry) SelectSize(size string) bool {
	if !e.Loaded() {
		return false
	}
	color, ok := e.doc.FirstColor(size)
	if !ok {
		return false
	}

	e.selectedSize = size
	e.selectedColor = color
	e.recompute()
	e.publish(ChangeSize)
	return true
}

// SelectColor switches the color within the current size. It returns false
// when color is not offered for the current size.
func (e *Entry) SelectColor(color string) bool {
	if !e.Loaded() {
		return false
	}
	if _, ok := e.doc.Images(e.selectedSize, color); !ok {
		return false
	}

	e.selectedColor = color
	e.recompute()
	e.publish(ChangeColor)
	return true
}

// ToggleExpanded flips the feature list between collapsed and expanded.
func (e *Entry) ToggleExpanded() {
	e.expanded = !e.expanded
	e.publish(ChangeExpanded)
}

// AddToCart is the add-to-cart affordance. There is no cart; nothing changes.
func (e *Entry) AddToCart() {
	e.log.WithFields(map[string]any{
		"size":  e.selectedSize,
		"color": e.selectedColor,
	}).Debug("add to cart pressed")
}

// recompute is the only writer of currentImages.
func (e *Entry) recompute() {
	images, _ := e.doc.Images(e.selectedSize, e.selectedColor)
	e.currentImages = images
}

// SelectedSize returns the selected size key, or "" before load.
func (e *Entry) SelectedSize() string {
	return e.selectedSize
}

// SelectedColor returns the selected color key, or "" before load.
func (e *Entry) SelectedColor() string {
	return e.selectedColor
}

// CurrentImages returns the images for the current selection. The slice is
// shared with the document and must not be modified.
func (e *Entry) CurrentImages() []catalog.ImageRef {
	return e.currentImages
}

// Expanded reports whether the feature list is expanded.
func (e *Entry) Expanded() bool {
	return e.expanded
}

// ShowFade reports whether the collapsed-list fade overlay is drawn.
func (e *Entry) ShowFade() bool {
	return !e.expanded
}

// ToggleLabel is the caption of the expand/collapse control.
func (e *Entry) ToggleLabel() string {
	if e.expanded {
		return showLessLabel
	}
	return showMoreLabel
}

// Title is the product name followed by the selected size.
func (e *Entry) Title() string {
	if !e.Loaded() {
		return ""
	}
	return e.doc.Name + " " + e.selectedSize
}

// Price is the display price of the selected size.
func (e *Entry) Price() string {
	if !e.Loaded() {
		return ""
	}
	entry, _ := e.doc.Sizes.Get(e.selectedSize)
	return entry.Price
}

// Description returns the product description.
func (e *Entry) Description() string {
	if !e.Loaded() {
		return ""
	}
	return e.doc.Description
}

// Features returns the feature list in document order.
func (e *Entry) Features() []string {
	if !e.Loaded() {
		return nil
	}
	return e.doc.Features
}

// SizeOptions lists every size key in document order.
func (e *Entry) SizeOptions() []string {
	if !e.Loaded() {
		return nil
	}
	return e.doc.Sizes.Keys()
}
