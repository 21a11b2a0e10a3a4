// Command stubserver runs the in-memory billing backend stub for local
// development, optionally seeded with a demo account and stock.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"medibill/internal/domain"
	"medibill/internal/stubapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "listen address")
	secret := flag.String("secret", "stub-secret", "JWT signing secret")
	expiry := flag.Duration("expiry", time.Hour, "token lifetime")
	seed := flag.Bool("seed", true, "seed a demo account and stock")
	flag.Parse()

	srv := stubapi.New(*secret, *expiry)
	if *seed {
		if err := seedDemo(srv.Store); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Printf("seeded demo account demo/demo1234")
	}

	log.Printf("stub backend listening on %s", *addr)
	if err := srv.Engine.Run(*addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func seedDemo(store *stubapi.Store) error {
	user, err := store.CreateUser("demo", "demo1234", "Demo Distributor", domain.RoleUser)
	if err != nil {
		return err
	}

	products := []domain.Product{
		{Name: "Paracetamol 500mg", HSN: "3004", MRP: 30, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x10"},
		{Name: "Amoxicillin 250mg", HSN: "3004", MRP: 85, CGSTPercent: 6, SGSTPercent: 6, Packing: "10x6"},
		{Name: "Cetirizine 10mg", HSN: "3004", MRP: 22, CGSTPercent: 2.5, SGSTPercent: 2.5, Packing: "10x10"},
	}
	for _, p := range products {
		created := store.AddProduct(p)
		store.AddStock(domain.StockBatch{
			Product:    *created,
			BatchNo:    fmt.Sprintf("B%03d", created.ID),
			ExpiryDate: "2027-03-31",
			Quantity:   200,
			UserID:     user.UserID,
		})
	}

	store.SaveDetails(user.UserID, domain.Details{
		FirmName: "Demo Pharma Distributors",
		Address:  "14 Market Road, Pune",
		GSTIN:    "27ABCDE1234F1Z5",
		DL1:      "MH-PNE-123456",
		DL2:      "MH-PNE-654321",
		Phone:    "9800000000",
		Email:    "demo@example.com",
	})
	return nil
}
