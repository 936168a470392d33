package service

import (
	"context"
	"testing"
)

func TestBillSummarisesSubmittedOrdersOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	burger := f.addMenuItem(t, "Burger", 12, true)
	cake := f.addMenuItem(t, "Cake", 5, true)
	session := f.openSession(t, 6)
	cart := f.cartService()

	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: burger.ID.Hex(), Quantity: intPtr(2)})
	if _, err := f.orderService().Submit(ctx, SubmitOrderRequest{SessionID: session.SessionID}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: cake.ID.Hex()})

	bill, err := f.billService().Get(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("bill: %v", err)
	}

	if bill.Cart.Subtotal != 5 || len(bill.Cart.Items) != 1 {
		t.Fatalf("unexpected cart section: %+v", bill.Cart)
	}
	if bill.Orders.Count != 1 || bill.Orders.Total != 27.12 {
		t.Fatalf("unexpected orders section: %+v", bill.Orders)
	}

	s := bill.Summary
	if s.Subtotal != 24 || s.Tax != 1.92 || s.ServiceFee != 1.2 || s.GrandTotal != 27.12 {
		t.Fatalf("summary must exclude the cart: %+v", s)
	}
	if s.TaxRate != "8%" || s.ServiceFeeRate != "5%" {
		t.Fatalf("unexpected rate labels: %s %s", s.TaxRate, s.ServiceFeeRate)
	}
}

func TestBillForEmptySession(t *testing.T) {
	f := newFixture()
	session := f.openSession(t, 6)

	bill, err := f.billService().Get(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("bill: %v", err)
	}
	if bill.Summary.GrandTotal != 0 || bill.Orders.Count != 0 || bill.Cart.Items == nil {
		t.Fatalf("unexpected empty bill: %+v", bill)
	}

	_, err = f.billService().Get(context.Background(), "missing")
	assertKind(t, err, KindNotFound)
}

func TestBillLineAmountsAreInCents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	juice := f.addMenuItem(t, "Juice", 1.1, true)
	session := f.openSession(t, 9)
	cart := f.cartService()

	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: juice.ID.Hex(), Quantity: intPtr(3)})
	if _, err := f.orderService().Submit(ctx, SubmitOrderRequest{SessionID: session.SessionID}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cart.Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: juice.ID.Hex(), Quantity: intPtr(3)})

	bill, err := f.billService().Get(ctx, session.SessionID)
	if err != nil {
		t.Fatalf("bill: %v", err)
	}
	if bill.Cart.Subtotal != 3.3 || bill.Cart.Items[0].Subtotal != 3.3 {
		t.Fatalf("cart amounts not rounded: %+v", bill.Cart)
	}
	if got := bill.Orders.Items[0].Items[0].Subtotal; got != 3.3 {
		t.Fatalf("order line subtotal not rounded: %v", got)
	}
	if bill.Summary.Subtotal != 3.3 {
		t.Fatalf("unexpected summary subtotal %v", bill.Summary.Subtotal)
	}
}
