package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateMenuItemDefaults(t *testing.T) {
	f := newFixture()
	svc := NewMenuService(f.menus)
	svc.now = f.clock

	item, err := svc.Create(context.Background(), CreateMenuItemRequest{
		Name:        "  Caesar Salad ",
		Description: "Romaine, croutons, parmesan",
		Price:       floatPtr(8.5),
		Category:    models.CategoryAppetizers,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Name != "Caesar Salad" || !item.Available || item.PreparationTime != models.DefaultPreparationTime {
		t.Fatalf("defaults not applied: %+v", item)
	}
	if item.Tags == nil || !item.Created_at.Equal(f.now) {
		t.Fatalf("unexpected tags or timestamps: %+v", item)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	f := newFixture()
	svc := NewMenuService(f.menus)

	tests := []struct {
		name string
		req  CreateMenuItemRequest
	}{
		{name: "missing price", req: CreateMenuItemRequest{Name: "X", Description: "d", Category: models.CategorySides}},
		{name: "negative price", req: CreateMenuItemRequest{Name: "X", Description: "d", Price: floatPtr(-1), Category: models.CategorySides}},
		{name: "bad category", req: CreateMenuItemRequest{Name: "X", Description: "d", Price: floatPtr(1), Category: "snacks"}},
		{name: "missing name", req: CreateMenuItemRequest{Description: "d", Price: floatPtr(1), Category: models.CategorySides}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if _, ok := err.(validator.ValidationErrors); !ok {
				t.Fatalf("expected validation errors, got %v", err)
			}
		})
	}

	if n, _ := f.menus.Count(context.Background()); n != 0 {
		t.Fatalf("invalid items must not be stored, got %d", n)
	}
}

func TestFreePriceIsAccepted(t *testing.T) {
	f := newFixture()
	svc := NewMenuService(f.menus)

	item, err := svc.Create(context.Background(), CreateMenuItemRequest{
		Name: "Water", Description: "Tap", Price: floatPtr(0), Category: models.CategoryBeverages,
	})
	if err != nil || item.Price != 0 {
		t.Fatalf("zero price should be allowed: %v", err)
	}
}

func TestListAndUpdateMenu(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	svc := NewMenuService(f.menus)
	burger := f.addMenuItem(t, "Burger", 12, true)
	f.addMenuItem(t, "Steak", 30, false)

	items, err := svc.ListByCategory(ctx, "MAIN-COURSE")
	if err != nil || len(items) != 1 || items[0].Name != "Burger" {
		t.Fatalf("category listing should hold only available items: %v %+v", err, items)
	}
	items, _ = svc.ListByCategory(ctx, "breakfast")
	if len(items) != 0 {
		t.Fatalf("unknown category should be empty")
	}

	bad := "snacks"
	_, err = svc.List(ctx, models.MenuFilter{Category: &bad})
	assertKind(t, err, KindValidation)

	_, err = svc.Update(ctx, burger.ID.Hex(), models.MenuItemPatch{Category: &bad})
	assertKind(t, err, KindValidation)

	name := " Smash Burger "
	updated, err := svc.Update(ctx, burger.ID.Hex(), models.MenuItemPatch{Name: &name})
	if err != nil || updated.Name != "Smash Burger" || updated.Price != 12 {
		t.Fatalf("update: %v %+v", err, updated)
	}

	if _, err := svc.Delete(ctx, burger.ID.Hex()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, burger.ID.Hex())
	assertKind(t, err, KindNotFound)
	_, err = svc.Delete(ctx, burger.ID.Hex())
	assertKind(t, err, KindNotFound)
}
