package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

// DefaultStaffAccounts are created by the seeder when missing. The passwords
// are meant to be changed right after the first login.
func DefaultStaffAccounts(adminPassword, kitchenPassword string) []CreateAdminUserRequest {
	return []CreateAdminUserRequest{
		{Username: "admin", Password: adminPassword, Name: "System Administrator", Role: models.RoleAdmin},
		{Username: "kitchen", Password: kitchenPassword, Name: "Kitchen Staff", Role: models.RoleKitchenStaff},
	}
}

func SampleMenu() []CreateMenuItemRequest {
	item := func(name, description string, price float64, category string, prep int, tags ...string) CreateMenuItemRequest {
		if tags == nil {
			tags = []string{}
		}
		return CreateMenuItemRequest{
			Name:            name,
			Description:     description,
			Price:           &price,
			Category:        category,
			PreparationTime: &prep,
			Tags:            tags,
		}
	}

	return []CreateMenuItemRequest{
		item("Crispy Spring Rolls", "Vegetable rolls with sweet chili dip", 6.99, models.CategoryAppetizers, 10, "vegetarian", "popular"),
		item("Buffalo Wings", "Hot wings with blue cheese dressing", 9.99, models.CategoryAppetizers, 15, "spicy", "popular"),
		item("Mozzarella Sticks", "Breaded mozzarella with marinara", 7.99, models.CategoryAppetizers, 12, "vegetarian"),
		item("Classic Cheeseburger", "Beef patty, cheddar, lettuce and tomato", 12.99, models.CategoryMainCourse, 20, "popular", "signature"),
		item("Grilled Chicken Pasta", "Penne in garlic cream with grilled chicken", 14.99, models.CategoryMainCourse, 25, "popular"),
		item("Margherita Pizza", "Tomato, mozzarella and basil", 11.99, models.CategoryMainCourse, 18, "vegetarian", "popular"),
		item("Fish and Chips", "Beer-battered cod with fries", 13.99, models.CategoryMainCourse, 22),
		item("Vegan Buddha Bowl", "Quinoa, roasted vegetables and tahini", 12.49, models.CategoryMainCourse, 15, "vegan", "healthy"),
		item("French Fries", "Salted shoestring fries", 3.99, models.CategorySides, 8, "vegetarian"),
		item("Onion Rings", "Battered onion rings", 4.99, models.CategorySides, 10, "vegetarian"),
		item("Caesar Salad", "Romaine, croutons and parmesan", 5.99, models.CategorySides, 5, "healthy"),
		item("Chocolate Lava Cake", "Warm cake with a molten center", 6.99, models.CategoryDesserts, 12, "popular", "signature"),
		item("New York Cheesecake", "Baked cheesecake with berry sauce", 5.99, models.CategoryDesserts, 5, "popular"),
		item("Ice Cream Sundae", "Vanilla ice cream with fudge", 4.99, models.CategoryDesserts, 5),
		item("Fresh Orange Juice", "Squeezed to order", 3.99, models.CategoryBeverages, 3, "fresh", "healthy"),
		item("Iced Coffee", "Cold brew over ice", 3.49, models.CategoryBeverages, 2),
		item("Sparkling Water", "Chilled bottle", 2.99, models.CategoryBeverages, 1),
		item("Mango Smoothie", "Mango, yogurt and honey", 4.99, models.CategoryBeverages, 5, "fresh", "healthy"),
	}
}

type Seeder struct {
	auth  *AuthService
	menus *MenuService
	repo  MenuRepository
	log   *slog.Logger
}

func NewSeeder(auth *AuthService, menus *MenuService, repo MenuRepository, log *slog.Logger) *Seeder {
	return &Seeder{auth: auth, menus: menus, repo: repo, log: log}
}

// SeedStaff creates the accounts that do not exist yet.
func (s *Seeder) SeedStaff(ctx context.Context, accounts []CreateAdminUserRequest) (int, error) {
	created := 0
	for _, account := range accounts {
		user, ok, err := s.auth.CreateUser(ctx, account)
		if err != nil {
			return created, fmt.Errorf("seed user %s: %w", account.Username, err)
		}
		if !ok {
			s.log.InfoContext(ctx, "staff account exists, skipping", slog.String("username", user.Username))
			continue
		}
		created++
		s.log.InfoContext(ctx, "staff account created",
			slog.String("username", user.Username),
			slog.String("role", user.Role),
		)
	}
	return created, nil
}

// SeedMenu fills an empty catalog; a catalog with any item is left alone.
func (s *Seeder) SeedMenu(ctx context.Context, items []CreateMenuItemRequest) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		s.log.InfoContext(ctx, "menu already populated, skipping", slog.Int64("items", count))
		return 0, nil
	}

	for i, req := range items {
		if _, err := s.menus.Create(ctx, req); err != nil {
			return i, fmt.Errorf("seed menu item %s: %w", req.Name, err)
		}
	}
	s.log.InfoContext(ctx, "menu seeded", slog.Int("items", len(items)))
	return len(items), nil
}
