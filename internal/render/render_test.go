package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/product"
)

const toteJSON = `{
  "name": "Tote",
  "description": "Everyday <b>bag</b><script>alert(1)</script>",
  "features": ["Cotton", "Zip pocket"],
  "sizes": {
    "S": {"price": "$10", "colors": {
      "Red": ["/img/red front.jpg", "/img/red back.jpg"],
      "Blue": ["/img/blue.jpg"]
    }},
    "M": {"price": "$12", "colors": {"Green": ["1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"]}}
  }
}`

func loadedPage(t *testing.T) (*product.Entry, *gallery.Gallery) {
	t.Helper()

	doc, err := catalog.Decode("tote.json", []byte(toteJSON))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	gal := gallery.New(nil)
	entry := product.NewEntry(product.WithListener(func(c product.Change) {
		if c.ImagesChanged() {
			gal.SetImages(c.Images)
		}
	}))
	entry.Load(doc)
	return entry, gal
}

func render(t *testing.T, entry *product.Entry, gal *gallery.Gallery, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, entry, gal, opts...))
	return buf.String()
}

func TestHTMLLoading(t *testing.T) {
	t.Parallel()

	out := render(t, product.NewEntry(), gallery.New(nil))
	assert.Equal(t, "<p>Loading...</p>", strings.TrimSpace(out))

	out = render(t, nil, nil)
	assert.Equal(t, "<p>Loading...</p>", strings.TrimSpace(out))
}

func TestHTMLLoadedPage(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	out := render(t, entry, gal)

	for _, want := range []string{
		`class="product-details-container"`,
		`class="image-gallery"`,
		`<h1 class="product-name">Tote S</h1>`,
		`<p class="product-price">$10</p>`,
		`<label>Select Color: Red</label>`,
		`class="thumbnail active"`,
		`alt="Thumbnail 2"`,
		`class="color-button active"`,
		`aria-label="Select Blue"`,
		`<button class="add-to-cart-button">Add to Cart</button>`,
		`class="feature-list collapsed"`,
		`<div class="fade-overlay"></div>`,
		`<button class="toggle-button">Show More</button>`,
		`<li>Zip pocket</li>`,
		`<option class="SelectItem" value="S" selected>S</option>`,
		`<option class="SelectItem" value="M">M</option>`,
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, `value="S"`), strings.Index(out, `value="M"`))
	assert.Equal(t, 1, strings.Count(out, "thumbnail active"))
	assert.NotContains(t, out, "scrollable")
}

func TestHTMLSwatchBackgroundIsEncoded(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	out := render(t, entry, gal)

	assert.Contains(t, out, "/img/red%20front.jpg")
	assert.NotContains(t, out, "red front.jpg")
	assert.Contains(t, out, "2px solid #ff6f00")
	assert.Contains(t, out, "1px solid #ddd")
}

func TestHTMLDescriptionIsPlainText(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	out := render(t, entry, gal)

	assert.Contains(t, out, `<p class="product-description">Everyday &lt;b&gt;bag&lt;/b&gt;&lt;script&gt;alert(1)&lt;/script&gt;</p>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")

	doc, err := catalog.Decode("tote.json", []byte(`{
  "name": "Tote",
  "description": "Sizes: 2 * 3 * 4 cm\n# 1 bestseller, see <https://x.io>",
  "sizes": {"S": {"price": "$10", "colors": {"Red": ["r1.jpg"]}}}
}`))
	require.NoError(t, err)
	plain := product.NewEntry()
	plain.Load(doc)

	out = render(t, plain, gallery.New(nil))
	assert.Contains(t, out, "Sizes: 2 * 3 * 4 cm\n# 1 bestseller, see &lt;https://x.io&gt;</p>")
	assert.NotContains(t, out, "<h1>")
	assert.NotContains(t, out, "<a ")
}

func TestHTMLMarkdownDescriptionIsSanitized(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	out := render(t, entry, gal, WithMarkdownDescription(true))

	assert.Contains(t, out, `<div class="product-description"><p>Everyday <b>bag</b></p></div>`)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert(1)")
}

func TestRenderDescriptionMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"plain text", "Everyday bag", "<p>Everyday bag</p>"},
		{"emphasis", "A **sturdy** tote", "<p>A <strong>sturdy</strong> tote</p>"},
		{"list", "- one\n- two", "<ul>\n<li>one</li>\n<li>two</li>\n</ul>"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderDescription(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	got, err := renderDescription("[x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, string(got), "javascript:")
	assert.Contains(t, string(got), "x")
}

func TestWithMarkdownDescriptionDisabled(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	assert.Equal(t, render(t, entry, gal), render(t, entry, gal, WithMarkdownDescription(false)))
}

func TestHTMLExpandedAndScrollable(t *testing.T) {
	t.Parallel()

	entry, gal := loadedPage(t)
	require.True(t, entry.SelectSize("M"))
	entry.ToggleExpanded()

	out := render(t, entry, gal)
	assert.Contains(t, out, `<h1 class="product-name">Tote M</h1>`)
	assert.Contains(t, out, `class="thumbnail-container scrollable"`)
	assert.Contains(t, out, `class="feature-list expanded"`)
	assert.NotContains(t, out, "fade-overlay")
	assert.Contains(t, out, "Show Less")
}

func TestSwatchStyle(t *testing.T) {
	t.Parallel()

	style := swatchStyle(product.Swatch{Key: "Clear"})
	assert.Contains(t, string(style), "background-image: none")

	style = swatchStyle(product.Swatch{Key: "Red", Background: "a b.jpg", BackgroundURL: "a%20b.jpg", Active: true})
	assert.Contains(t, string(style), `url("a%20b.jpg")`)
	assert.Contains(t, string(style), "2px solid #ff6f00")
}
