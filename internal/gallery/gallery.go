// Package gallery is the view-model of the image gallery: one displayed image
// and a thumbnail strip over an ordered image list supplied by its owner.
package gallery

import "github.com/alexisbeaulieu97/showcase/internal/catalog"

// ThumbnailLimit is the number of thumbnails shown before the strip scrolls.
const ThumbnailLimit = 5

// Gallery tracks which of its images is displayed.
type Gallery struct {
	images     []catalog.ImageRef
	displayed  catalog.ImageRef
	scrollable bool
}

// Thumbnail is one entry of the thumbnail strip.
type Thumbnail struct {
	Index  int
	Image  catalog.ImageRef
	Active bool
}

// New returns a gallery over images.
func New(images []catalog.ImageRef) *Gallery {
	g := &Gallery{}
	g.SetImages(images)
	return g
}

// SetImages replaces the image list, displays its first image and recomputes
// whether the strip scrolls. Passing the slice the gallery already holds is a
// no-op, so the displayed image survives re-selecting the same variant.
// Callers supply a non-empty list; an empty one leaves nothing displayed.
func (g *Gallery) SetImages(images []catalog.ImageRef) {
	if g.images != nil && sameSlice(g.images, images) {
		return
	}
	g.images = images
	g.scrollable = len(images) > ThumbnailLimit
	g.displayed = ""
	if len(images) > 0 {
		g.displayed = images[0]
	}
}

// SelectThumbnail displays image. It returns false when image is not one of
// the gallery's images.
func (g *Gallery) SelectThumbnail(image catalog.ImageRef) bool {
	if g.indexOf(image) < 0 {
		return false
	}
	g.displayed = image
	return true
}

// SelectIndex displays the image at position i.
func (g *Gallery) SelectIndex(i int) bool {
	if i < 0 || i >= len(g.images) {
		return false
	}
	g.displayed = g.images[i]
	return true
}

// Next displays the following image, wrapping to the first.
func (g *Gallery) Next() {
	if len(g.images) == 0 {
		return
	}
	g.SelectIndex((g.ActiveIndex() + 1) % len(g.images))
}

// Prev displays the preceding image, wrapping to the last.
func (g *Gallery) Prev() {
	if len(g.images) == 0 {
		return
	}
	g.SelectIndex((g.ActiveIndex() - 1 + len(g.images)) % len(g.images))
}

// Displayed returns the image shown as the large preview.
func (g *Gallery) Displayed() catalog.ImageRef {
	return g.displayed
}

// ActiveIndex returns the position of the displayed image, or -1.
func (g *Gallery) ActiveIndex() int {
	return g.indexOf(g.displayed)
}

// Images returns the gallery's image list.
func (g *Gallery) Images() []catalog.ImageRef {
	return g.images
}

// Scrollable reports whether there are more images than ThumbnailLimit.
func (g *Gallery) Scrollable() bool {
	return g.scrollable
}

// Thumbnails returns the strip entries. Every entry whose image equals the
// displayed image is marked active, so repeated refs highlight together.
func (g *Gallery) Thumbnails() []Thumbnail {
	thumbs := make([]Thumbnail, len(g.images))
	for i, img := range g.images {
		thumbs[i] = Thumbnail{Index: i, Image: img, Active: img == g.displayed}
	}
	return thumbs
}

func (g *Gallery) indexOf(image catalog.ImageRef) int {
	for i, img := range g.images {
		if img == image {
			return i
		}
	}
	return -1
}

func sameSlice(a, b []catalog.ImageRef) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
