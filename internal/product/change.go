package product

import "github.com/alexisbeaulieu97/showcase/internal/catalog"

// ChangeKind identifies which mutation produced a Change.
type ChangeKind int

const (
	ChangeLoaded ChangeKind = iota
	ChangeSize
	ChangeColor
	ChangeExpanded
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLoaded:
		return "loaded"
	case ChangeSize:
		return "size"
	case ChangeColor:
		return "color"
	case ChangeExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Change is published after every successful mutation.
type Change struct {
	Kind     ChangeKind
	Size     string
	Color    string
	Images   []catalog.ImageRef
	Expanded bool
}

// ImagesChanged reports whether the derived image list may differ from before.
func (c Change) ImagesChanged() bool {
	return c.Kind != ChangeExpanded
}

// Listener receives state changes. Listeners run synchronously on the caller's
// goroutine, in registration order.
type Listener func(Change)

// Subscribe registers fn for future changes. A nil fn is ignored.
func (e *Entry) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

func (e *Entry) publish(kind ChangeKind) {
	e.log.WithFields(map[string]any{
		"change": kind.String(),
		"size":   e.selectedSize,
		"color":  e.selectedColor,
		"images": len(e.currentImages),
	}).Debug("product state changed")

	if len(e.listeners) == 0 {
		return
	}
	change := Change{
		Kind:     kind,
		Size:     e.selectedSize,
		Color:    e.selectedColor,
		Images:   e.currentImages,
		Expanded: e.expanded,
	}
	for _, fn := range e.listeners {
		fn(change)
	}
}
