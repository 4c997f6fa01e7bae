package domain

import "fmt"

// Style is the closed set of shirt cuts the catalog sells.
type Style string

const (
	StyleCrewNeck Style = "Crew Neck"
	StyleVNeck    Style = "V-Neck"
	StylePyramid  Style = "Pyramid"
)

// Styles lists all styles in display order.
func Styles() []Style {
	return []Style{StyleCrewNeck, StyleVNeck, StylePyramid}
}

func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleCrewNeck, StyleVNeck, StylePyramid:
		return Style(s), nil
	}
	return "", fmt.Errorf("style[%s] is not valid", s)
}

// Size is the closed set of shirt sizes.
type Size string

const (
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	Size2XL Size = "2XL"
	Size3XL Size = "3XL"
	Size4XL Size = "4XL"
	Size5XL Size = "5XL"
)

// Sizes lists all sizes in display order.
func Sizes() []Size {
	return []Size{SizeM, SizeL, SizeXL, Size2XL, Size3XL, Size4XL, Size5XL}
}

func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeM, SizeL, SizeXL, Size2XL, Size3XL, Size4XL, Size5XL:
		return Size(s), nil
	}
	return "", fmt.Errorf("size[%s] is not valid", s)
}

// Product is an immutable catalog record. Inventory of zero means the
// product is shown as out of stock; it is not enforced against purchase.
type Product struct {
	ID          int
	Name        string
	Color       string // swatch value, e.g. "#000000"
	ColorName   string
	Price       Money
	Image       string
	Description string
	Style       Style
	Inventory   int
}

func (p Product) InStock() bool {
	return p.Inventory > 0
}
