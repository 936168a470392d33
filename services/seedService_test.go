package service

import (
	"context"
	"testing"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
)

func TestSeederIsRepeatable(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	auth := NewAuthService(f.users, helper.NewTokenHelper("secret", time.Hour), f.log)
	seeder := NewSeeder(auth, NewMenuService(f.menus), f.menus, f.log)

	accounts := DefaultStaffAccounts("Admin123!", "Kitchen123!")
	for run, want := range []int{2, 0} {
		created, err := seeder.SeedStaff(ctx, accounts)
		if err != nil {
			t.Fatalf("run %d: seed staff: %v", run, err)
		}
		if created != want {
			t.Fatalf("run %d: expected %d accounts, got %d", run, want, created)
		}
	}

	menu := SampleMenu()
	for run, want := range []int{len(menu), 0} {
		created, err := seeder.SeedMenu(ctx, menu)
		if err != nil {
			t.Fatalf("run %d: seed menu: %v", run, err)
		}
		if created != want {
			t.Fatalf("run %d: expected %d items, got %d", run, want, created)
		}
	}

	if _, err := auth.Login(ctx, LoginRequest{Username: "kitchen", Password: "Kitchen123!"}); err != nil {
		t.Fatalf("seeded account cannot log in: %v", err)
	}
}
