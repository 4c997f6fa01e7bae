package designer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nikolayk812/storefront-demo/internal/designer"
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

func TestTransliterate(t *testing.T) {
	defaultGlyphs := "\U00013193\U00013171\U00013216\U000131cb\U00013171\U0001308b"

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single letters map to glyphs",
			text: "ab",
			want: "\U0001313f\U000130c0",
		},
		{
			name: "uppercase maps like lowercase",
			text: "AB",
			want: "\U0001313f\U000130c0",
		},
		{
			name: "x expands to two glyphs",
			text: "x",
			want: "\U000133a1\U000132f4",
		},
		{
			name: "spaces survive",
			text: "a b",
			want: "\U0001313f \U000130c0",
		},
		{
			name: "unmapped runes are skipped",
			text: "a1!b",
			want: "\U0001313f\U000130c0",
		},
		{
			name: "empty input falls back to default glyphs",
			text: "",
			want: defaultGlyphs,
		},
		{
			name: "input with no mappable runes falls back too",
			text: "123!?",
			want: defaultGlyphs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, designer.Transliterate(tt.text))
		})
	}
}

func TestCustomProduct(t *testing.T) {
	tests := []struct {
		name          string
		colorName     string
		wantColorName string
		wantSwatch    string
	}{
		{name: "white", colorName: "White", wantColorName: "White", wantSwatch: "#FFFFFF"},
		{name: "black", colorName: "Black", wantColorName: "Black", wantSwatch: "#000000"},
		{name: "sand", colorName: "Sand", wantColorName: "Sand", wantSwatch: "#F5F5DC"},
		{name: "sky blue", colorName: "Sky Blue", wantColorName: "Sky Blue", wantSwatch: "#87CEEB"},
		{name: "unknown color falls back to white", colorName: "Mauve", wantColorName: "White", wantSwatch: "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := designer.CustomProduct("Cleo", tt.colorName)

			assert.Equal(t, designer.CustomProductID, p.ID)
			assert.Equal(t, "Custom Hieroglyphic Tee", p.Name)
			assert.Equal(t, tt.wantColorName, p.ColorName)
			assert.Equal(t, tt.wantSwatch, p.Color)
			assert.Equal(t, domain.StylePyramid, p.Style)
			assert.True(t, decimal.RequireFromString("69.99").Equal(p.Price.Amount))
			assert.Contains(t, p.Description, "Cleo")
			assert.NotEmpty(t, p.Image)
			assert.Zero(t, p.Inventory)
		})
	}
}
