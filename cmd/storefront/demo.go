package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront-demo/internal/cart"
	"github.com/nikolayk812/storefront-demo/internal/checkout"
	"github.com/nikolayk812/storefront-demo/internal/designer"
	"github.com/nikolayk812/storefront-demo/internal/domain"
)

// demoCmd walks the whole purchase flow once: fill a cart from the
// catalog, add a custom design, apply the promo code, and check out.
func demoCmd(catalogPath, logLevel *string) *cobra.Command {
	var promo string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted purchase from catalog to order confirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(*logLevel)

			cat, err := loadCatalog(*catalogPath)
			if err != nil {
				return fmt.Errorf("loadCatalog: %w", err)
			}

			products := cat.Products()
			if len(products) < 2 {
				return fmt.Errorf("catalog has %d products, need at least 2", len(products))
			}

			store := cart.NewStore()
			store.AddItem(products[0], domain.SizeL, 2)
			store.AddItem(products[1], domain.SizeM, 1)
			store.AddItem(products[0], domain.SizeL, 1) // merges into the first row
			store.AddItem(designer.CustomProduct("Cleo", "Sand"), domain.SizeXL, 1)

			for i, item := range store.Items() {
				fmt.Printf("%d. %s (%s, %s) x%d = %s\n",
					i+1, item.Product.Name, item.Product.ColorName, item.Size,
					item.Quantity, item.Subtotal())
			}
			fmt.Printf("cart: %d items, subtotal %s\n\n", store.ItemCount(), store.Total())

			promoApplied := false
			if promo != "" {
				if err := checkout.ApplyPromo(promo); err != nil {
					logger.Warn("promo rejected", slog.String("code", promo))
				} else {
					promoApplied = true
					fmt.Println("50% discount applied!")
				}
			}

			form := domain.CheckoutForm{
				FirstName:  "Nefer",
				LastName:   "Titi",
				Email:      "nefertiti@example.com",
				Address:    "1 Nile Street",
				City:       "Thebes",
				State:      "NY",
				ZipCode:    "10001",
				Country:    "United States",
				CardName:   "Nefer Titi",
				CardNumber: "4242 4242 4242 4242",
				ExpDate:    "12/29",
				CVV:        "123",
			}

			order, err := checkout.PlaceOrder(store, form, promoApplied)
			if err != nil {
				var verr *checkout.ValidationError
				if errors.As(err, &verr) {
					for field, msg := range verr.Fields {
						fmt.Printf("  %s: %s\n", field, msg)
					}
				}
				return fmt.Errorf("checkout.PlaceOrder: %w", err)
			}

			b := order.Breakdown
			fmt.Printf("Subtotal  %s\n", b.Subtotal)
			if !b.Discount.IsZero() {
				fmt.Printf("Discount -%s\n", b.Discount)
			}
			fmt.Printf("Shipping  %s\n", b.Shipping)
			fmt.Printf("Tax       %s\n", b.Tax)
			fmt.Printf("Total     %s\n", b.Total)
			fmt.Printf("\nThank you for your order! Order #%d\n", order.Number)

			logger.Info("order placed",
				slog.String("order_id", order.ID.String()),
				slog.Int("order_number", order.Number),
				slog.Int("cart_items_left", store.ItemCount()),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&promo, "promo", "", "promo code to apply at checkout")

	return cmd
}
