package catalog

import (
	"fmt"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Validate checks only what the default selection needs: at least one size,
// at least one color per size and at least one image per color. Names,
// prices and image refs are shown as given, empty or not.
func (d *Document) Validate() error {
	if d == nil {
		return showcaseerrors.NewValidationError("document", "document is nil", nil)
	}

	if d.Sizes.Len() == 0 {
		return showcaseerrors.NewValidationError("sizes", "must contain at least one size", nil)
	}

	for _, size := range d.Sizes.Keys() {
		entry, _ := d.Sizes.Get(size)
		prefix := fmt.Sprintf("sizes.%s", size)

		if entry.Colors.Len() == 0 {
			return showcaseerrors.NewValidationError(prefix+".colors", "must contain at least one color", nil)
		}

		for _, color := range entry.Colors.Keys() {
			images, _ := entry.Colors.Get(color)
			if len(images) == 0 {
				field := fmt.Sprintf("%s.colors.%s", prefix, color)
				return showcaseerrors.NewValidationError(field, "must contain at least one image", nil)
			}
		}
	}

	return nil
}
