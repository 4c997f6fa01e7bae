package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront-demo/internal/catalog"
	"github.com/nikolayk812/storefront-demo/internal/designer"
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

func catalogCmd(catalogPath, logLevel *string) *cobra.Command {
	var (
		color   string
		style   string
		inStock bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)

			cat, err := loadCatalog(*catalogPath)
			if err != nil {
				return fmt.Errorf("loadCatalog: %w", err)
			}

			filter := catalog.Filter{
				ColorName:   color,
				InStockOnly: inStock,
			}
			if style != "" {
				parsed, err := domain.ParseStyle(style)
				if err != nil {
					return fmt.Errorf("domain.ParseStyle: %w", err)
				}
				filter.Style = parsed
			}

			products := cat.Filter(filter)
			logger.Debug("filtered catalog", slog.Int("products", len(products)))

			if len(products) == 0 {
				fmt.Println("No products match your current filters.")
				return nil
			}

			for _, p := range products {
				stock := "out of stock"
				if p.InStock() {
					stock = fmt.Sprintf("%d in stock", p.Inventory)
				}
				fmt.Printf("%3d  %-22s %-13s %-9s %s  (%s)\n",
					p.ID, p.Name, p.ColorName, p.Style, p.Price, stock)
			}
			fmt.Printf("\n%d products, %d shirts in stock overall\n",
				len(products), cat.TotalInventory())

			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "filter by color name")
	cmd.Flags().StringVar(&style, "style", "", "filter by style (Crew Neck, V-Neck, Pyramid)")
	cmd.Flags().BoolVar(&inStock, "in-stock", false, "only show in-stock products")

	return cmd
}

func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <text>",
		Short: "Preview a name in hieroglyphics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(designer.Transliterate(args[0]))
			return nil
		},
	}
}
