package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

func TestAddMergesLinesForSameItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	fries := f.addMenuItem(t, "Fries", 4.5, true)
	session := f.openSession(t, 1)

	if _, err := cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: fries.ID.Hex(), Quantity: intPtr(2)}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	view, err := cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: fries.ID.Hex(), Quantity: intPtr(3), SpecialInstructions: "extra salt"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(view.Cart) != 1 {
		t.Fatalf("expected a single line, got %d", len(view.Cart))
	}
	if view.Cart[0].Quantity != 5 || view.Cart[0].SpecialInstructions != "extra salt" {
		t.Fatalf("unexpected line: %+v", view.Cart[0])
	}
	if view.CartTotal != 22.5 {
		t.Fatalf("expected cart total 22.5, got %v", view.CartTotal)
	}

	view, _ = cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: fries.ID.Hex()})
	if view.Cart[0].Quantity != 6 || view.Cart[0].SpecialInstructions != "extra salt" {
		t.Fatalf("default quantity or instructions wrong: %+v", view.Cart[0])
	}
}

func TestAddKeepsPriceCapturedAtAddTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	soup := f.addMenuItem(t, "Soup", 6, true)
	session := f.openSession(t, 1)

	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: soup.ID.Hex()})

	price := 9.0
	menus := NewMenuService(f.menus)
	if _, err := menus.Update(ctx, soup.ID.Hex(), models.MenuItemPatch{Price: &price}); err != nil {
		t.Fatalf("update price: %v", err)
	}

	view, _ := cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: soup.ID.Hex()})
	if view.Cart[0].Price != 6 || view.CartTotal != 12 {
		t.Fatalf("line price should stay at 6, got %+v", view.Cart[0])
	}
}

func TestAddRejectsUnknownOrUnavailableItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	soldOut := f.addMenuItem(t, "Lobster", 40, false)
	session := f.openSession(t, 1)

	_, err := cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: soldOut.ID.Hex()})
	assertKind(t, err, KindValidation)

	_, err = cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: primitive.NewObjectID().Hex()})
	assertKind(t, err, KindNotFound)

	_, err = cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: "bogus"})
	if !errors.Is(err, store.ErrInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}

	_, err = cart.Add(ctx, AddToCartRequest{SessionID: "nope", MenuItemID: soldOut.ID.Hex()})
	assertKind(t, err, KindNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	tea := f.addMenuItem(t, "Tea", 2.5, true)
	cake := f.addMenuItem(t, "Cake", 5, true)
	session := f.openSession(t, 4)

	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(2)})
	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: cake.ID.Hex()})

	_, err := cart.Update(ctx, UpdateCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(-1)})
	assertKind(t, err, KindValidation)
	view, _ := cart.Get(ctx, session.SessionID)
	if view.Cart[0].Quantity != 2 || len(view.Cart) != 2 {
		t.Fatalf("rejected update must not change the cart: %+v", view.Cart)
	}

	view, err = cart.Update(ctx, UpdateCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(4)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view.Cart[0].Quantity != 4 || view.CartTotal != 15 {
		t.Fatalf("unexpected cart after update: %+v", view)
	}

	view, err = cart.Update(ctx, UpdateCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(0)})
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(view.Cart) != 1 || view.Cart[0].Name != "Cake" {
		t.Fatalf("zero quantity should remove the line: %+v", view.Cart)
	}

	_, err = cart.Update(ctx, UpdateCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(1)})
	assertKind(t, err, KindNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	tea := f.addMenuItem(t, "Tea", 2.5, true)
	session := f.openSession(t, 4)

	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex()})
	for i := 0; i < 2; i++ {
		view, err := cart.Remove(ctx, RemoveFromCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex()})
		if err != nil {
			t.Fatalf("remove #%d: %v", i+1, err)
		}
		if len(view.Cart) != 0 || view.CartTotal != 0 {
			t.Fatalf("expected empty cart, got %+v", view)
		}
	}
}

func TestCartRejectsExpiredSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tea := f.addMenuItem(t, "Tea", 2.5, true)
	session := f.openSession(t, 4)

	f.now = f.now.Add(3 * time.Hour)
	_, err := f.cartService().Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex()})
	assertKind(t, err, KindNotFound)
}

func TestAddDefaultsZeroQuantityAndRejectsNegative(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cart := f.cartService()
	soup := f.addMenuItem(t, "Soup", 6, true)
	session := f.openSession(t, 4)

	view, err := cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: soup.ID.Hex(), Quantity: intPtr(0)})
	if err != nil {
		t.Fatalf("add with zero quantity: %v", err)
	}
	if len(view.Cart) != 1 || view.Cart[0].Quantity != 1 {
		t.Fatalf("zero quantity should add one unit: %+v", view.Cart)
	}

	_, err = cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: soup.ID.Hex(), Quantity: intPtr(-2)})
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		t.Fatalf("negative quantity should fail validation, got %v", err)
	}

	view, _ = cart.Get(ctx, session.SessionID)
	if view.Cart[0].Quantity != 1 {
		t.Fatalf("rejected add must not change the cart: %+v", view.Cart)
	}
}
