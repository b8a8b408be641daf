package product

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
)

// Swatch is one entry of the color picker. Its background is the first image
// of the color's image list.
type Swatch struct {
	Key           string
	Background    catalog.ImageRef
	BackgroundURL string
	Active        bool
}

// ColorOptions lists the colors of the selected size in document order.
func (e *Entry) ColorOptions() []Swatch {
	if !e.Loaded() {
		return nil
	}
	entry, ok := e.doc.Sizes.Get(e.selectedSize)
	if !ok {
		return nil
	}

	keys := entry.Colors.Keys()
	swatches := make([]Swatch, 0, len(keys))
	for _, key := range keys {
		images, _ := entry.Colors.Get(key)
		var bg catalog.ImageRef
		if len(images) > 0 {
			bg = images[0]
		}
		swatches = append(swatches, Swatch{
			Key:           key,
			Background:    bg,
			BackgroundURL: EncodeURI(string(bg)),
			Active:        key == e.selectedColor,
		})
	}
	return swatches
}

// CSSBackground returns the swatch background as a CSS value: url(...) for an
// image, "none" when there is none.
func (s Swatch) CSSBackground() string {
	if s.Background == "" {
		return "none"
	}
	return "url(" + s.BackgroundURL + ")"
}

const upperhex = "0123456789ABCDEF"

// EncodeURI percent-encodes ref so it can be embedded in a URL context while
// leaving characters that are meaningful in a full URI untouched. It matches
// the encodeURI behaviour browsers implement.
func EncodeURI(ref string) string {
	var b strings.Builder
	b.Grow(len(ref))
	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if keepInURI(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func keepInURI(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(";,/?:@&=+$-_.!~*'()#", c) >= 0
}
