package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

//go:embed products.yaml
var seedYAML []byte

type seedFile struct {
	// Currency applies to every product in the file, ISO 4217 code.
	Currency string        `yaml:"currency"`
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Color       string `yaml:"color"`
	ColorName   string `yaml:"color_name"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
	Style       string `yaml:"style"`
	Inventory   int    `yaml:"inventory"`
}

// Default parses the embedded seed catalog. The seed file ships with
// the binary, so a parse failure is a build defect, not a runtime
// condition; it panics rather than forcing every caller to handle it.
func Default() *Catalog {
	c, err := parse(seedYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads a product catalog from a YAML file, for running the
// demo against an alternative product set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse[%s]: %w", path, err)
	}

	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	if file.Currency == "" {
		file.Currency = "USD"
	}
	unit, err := currency.ParseISO(file.Currency)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", file.Currency, err)
	}

	products := make([]domain.Product, 0, len(file.Products))
	seen := make(map[int]bool)

	for _, sp := range file.Products {
		p, err := mapSeedProductToDomain(sp, unit)
		if err != nil {
			return nil, fmt.Errorf("mapSeedProductToDomain: %w", err)
		}

		if seen[p.ID] {
			return nil, fmt.Errorf("product id[%d] is duplicated", p.ID)
		}
		seen[p.ID] = true

		products = append(products, p)
	}

	return New(products), nil
}

func mapSeedProductToDomain(sp seedProduct, unit currency.Unit) (domain.Product, error) {
	if sp.Name == "" {
		return domain.Product{}, fmt.Errorf("product id[%d] name is empty", sp.ID)
	}

	amount, err := decimal.NewFromString(sp.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", sp.Price, err)
	}
	if amount.IsNegative() {
		return domain.Product{}, fmt.Errorf("price[%s] is negative", sp.Price)
	}

	style, err := domain.ParseStyle(sp.Style)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseStyle: %w", err)
	}

	if sp.Inventory < 0 {
		return domain.Product{}, fmt.Errorf("inventory[%d] is negative", sp.Inventory)
	}

	return domain.Product{
		ID:          sp.ID,
		Name:        sp.Name,
		Color:       sp.Color,
		ColorName:   sp.ColorName,
		Price:       domain.Money{Amount: amount, Currency: unit},
		Image:       sp.Image,
		Description: sp.Description,
		Style:       style,
		Inventory:   sp.Inventory,
	}, nil
}
