package service

import (
	"context"
	"testing"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

func TestDashboard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	burger := f.addMenuItem(t, "Burger", 12, true)
	tea := f.addMenuItem(t, "Tea", 3, true)

	yesterday := f.now.Add(-24 * time.Hour)
	old := models.Order{
		OrderNumber: "ORD-OLD",
		TableNumber: 1,
		Items:       []models.OrderLine{{MenuItemID: burger.ID, Name: "Burger", Quantity: 1, Price: 12}},
		Total:       13.56,
		Status:      models.OrderServed,
		Created_at:  yesterday,
	}
	if err := f.orders.Create(ctx, &old); err != nil {
		t.Fatalf("seed: %v", err)
	}

	session := f.openSession(t, 2)
	f.cartService().Add(ctx, AddToCartRequest{SessionID: session.SessionID, MenuItemID: tea.ID.Hex(), Quantity: intPtr(3)})
	if _, err := f.orderService().Submit(ctx, SubmitOrderRequest{SessionID: session.SessionID}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	svc := NewAnalyticsService(f.orders)
	svc.now = f.clock
	d, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if d.Overview.TotalOrders != 2 || d.Overview.TotalRevenue != 23.73 {
		t.Fatalf("unexpected overview: %+v", d.Overview)
	}
	if d.Today.Orders != 1 || d.Today.Revenue != 10.17 {
		t.Fatalf("unexpected today: %+v", d.Today)
	}
	if d.StatusBreakdown[models.OrderPending] != 1 || d.StatusBreakdown[models.OrderServed] != 1 {
		t.Fatalf("unexpected breakdown: %v", d.StatusBreakdown)
	}
	if len(d.PopularItems) != 2 || d.PopularItems[0].Name != "Tea" {
		t.Fatalf("unexpected popular items: %+v", d.PopularItems)
	}
	if len(d.RecentOrders) != 2 || d.RecentOrders[0].TableNumber != 2 {
		t.Fatalf("unexpected recent orders: %+v", d.RecentOrders)
	}
}
