// Package designer builds the custom hieroglyphic tee: it turns a
// customer's name into a glyph sequence and wraps it in a one-off
// product that feeds the cart like any catalog item.
package designer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// CustomProductID marks custom designs in the cart. Merging still works
// per (ID, size), so two custom tees in the same size share a row.
const CustomProductID = 999

// defaultGlyphs is shown when the input transliterates to nothing.
const defaultGlyphs = "\U00013193\U00013171\U00013216\U000131cb\U00013171\U0001308b"

var customPrice = decimal.RequireFromString("69.99")

// glyphMap transliterates Latin letters to hieroglyphs. Some letters
// share a glyph (c/k/q, i/y, o/u/w) and x expands to two.
var glyphMap = map[rune]string{
	'a': "\U0001313f", 'b': "\U000130c0", 'c': "\U000133a1", 'd': "\U000130a7",
	'e': "\U000131cb", 'f': "\U00013191", 'g': "\U000133bc", 'h': "\U00013254",
	'i': "\U000131cb", 'j': "\U00013193", 'k': "\U000133a1", 'l': "\U000130ed",
	'm': "\U00013153", 'n': "\U00013216", 'o': "\U00013171", 'p': "\U000132aa",
	'q': "\U000133d8", 'r': "\U0001308b", 's': "\U000132f4", 't': "\U000133cf",
	'u': "\U00013171", 'v': "\U00013191", 'w': "\U00013171", 'x': "\U000133a1\U000132f4",
	'y': "\U000131cb", 'z': "\U00013283", ' ': " ",
}

// Transliterate maps text to its hieroglyphic rendering, rune by rune,
// case-insensitively. Runes without a glyph are skipped; if nothing
// survives, the default glyph sequence is returned.
func Transliterate(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if glyph, ok := glyphMap[r]; ok {
			b.WriteString(glyph)
		}
	}

	if b.Len() == 0 {
		return defaultGlyphs
	}
	return b.String()
}

// shirt colors available for custom designs, with their swatch and
// preview image. White doubles as the fallback for unknown names.
var customColors = map[string]struct {
	swatch string
	image  string
}{
	"White":    {"#FFFFFF", "https://images.unsplash.com/photo-1581655353564-df123a1eb820?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"},
	"Black":    {"#000000", "https://images.unsplash.com/photo-1618354691792-d1d42acfd860?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"},
	"Sand":     {"#F5F5DC", "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"},
	"Sky Blue": {"#87CEEB", "https://images.unsplash.com/photo-1529374255404-311a2a4f1fd9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80"},
}

// Colors lists the color names offered for custom designs.
func Colors() []string {
	return []string{"White", "Black", "Sand", "Sky Blue"}
}

// CustomProduct builds the one-off product for a custom design with the
// given name printed as glyphs. Unknown colors fall back to White.
func CustomProduct(name, colorName string) domain.Product {
	c, ok := customColors[colorName]
	if !ok {
		colorName = "White"
		c = customColors[colorName]
	}

	return domain.Product{
		ID:          CustomProductID,
		Name:        "Custom Hieroglyphic Tee",
		Color:       c.swatch,
		ColorName:   colorName,
		Price:       domain.USD(customPrice),
		Image:       c.image,
		Description: "Custom hieroglyphic design with your name: " + name + ". Premium 100% Egyptian cotton t-shirt with authentic hieroglyphic translation.",
		Style:       domain.StylePyramid,
	}
}
