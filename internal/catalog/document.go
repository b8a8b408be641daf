// Package catalog holds the product document shown on the detail page and the
// sources it is fetched from.
//
// Mapping order matters: the first size and the first color of a size are the
// default selection, and both pickers display keys in document order. Go maps
// do not keep insertion order, so sizes and colors are stored in OrderedMap,
// which carries the key list alongside the lookup table.
package catalog

// ImageRef is an opaque locator (URL or path) for an image resource.
type ImageRef string

// Document is the product description loaded once and read-only afterwards.
type Document struct {
	Name        string                `yaml:"name" json:"name"`
	Description string                `yaml:"description" json:"description"`
	Features    []string              `yaml:"features" json:"features"`
	Sizes       OrderedMap[SizeEntry] `yaml:"sizes" json:"sizes"`
}

// SizeEntry is the price and color variants offered for one size.
type SizeEntry struct {
	Price  string                 `yaml:"price" json:"price"`
	Colors OrderedMap[[]ImageRef] `yaml:"colors" json:"colors"`
}

// Images derives the image list for a (size, color) pair. The returned slice is
// the one stored in the document; callers must not modify it.
func (d *Document) Images(size, color string) ([]ImageRef, bool) {
	if d == nil {
		return nil, false
	}
	entry, ok := d.Sizes.Get(size)
	if !ok {
		return nil, false
	}
	return entry.Colors.Get(color)
}

// DefaultSelection returns the first size key and the first color key under it.
func (d *Document) DefaultSelection() (size, color string, ok bool) {
	if d == nil {
		return "", "", false
	}
	size, ok = d.Sizes.First()
	if !ok {
		return "", "", false
	}
	entry, _ := d.Sizes.Get(size)
	color, ok = entry.Colors.First()
	if !ok {
		return "", "", false
	}
	return size, color, true
}

// FirstColor returns the first color key offered for size.
func (d *Document) FirstColor(size string) (string, bool) {
	if d == nil {
		return "", false
	}
	entry, ok := d.Sizes.Get(size)
	if !ok {
		return "", false
	}
	return entry.Colors.First()
}
