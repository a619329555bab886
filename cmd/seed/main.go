// seed creates the single admin user and the default payment methods.
// It is idempotent: existing rows are left untouched.
//
// Usage: ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/infrastructure/postgres"
	"github.com/mobileshop/pos-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

var defaultPaymentMethods = []string{"Cash", "Card", "UPI", "Bank Transfer"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_EMAIL and ADMIN_PASSWORD are required")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "PostgreSQL connection: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "look up admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("admin %s already exists, skipping\n", email)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now().UTC()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Administrator",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			fmt.Fprintf(os.Stderr, "create admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("created admin %s\n", email)
	}

	methodRepo := postgres.NewPaymentMethodRepository(pool)
	existingMethods, err := methodRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "list payment methods: %v\n", err)
		os.Exit(1)
	}
	have := make(map[string]bool, len(existingMethods))
	for _, m := range existingMethods {
		have[strings.ToLower(m.Name)] = true
	}
	created := 0
	for i, name := range defaultPaymentMethods {
		if have[strings.ToLower(name)] {
			continue
		}
		now := time.Now().UTC()
		method := &entity.PaymentMethod{
			ID:        uuid.New().String(),
			Name:      name,
			SortOrder: i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := methodRepo.Create(method); err != nil {
			fmt.Fprintf(os.Stderr, "create payment method %s: %v\n", name, err)
			os.Exit(1)
		}
		created++
	}
	fmt.Printf("payment methods: %d created, %d already present\n", created, len(have))
}
