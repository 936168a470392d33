package service

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateStockTogglesAvailability(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	svc := NewInventoryService(f.menus)
	item := f.addMenuItem(t, "Ribs", 22, true)

	list, err := svc.List(ctx, "")
	if err != nil || len(list) != 1 || list[0].StockLevel != 100 {
		t.Fatalf("untracked stock should report the default: %v %+v", err, list)
	}

	got, err := svc.UpdateStock(ctx, item.ID.Hex(), UpdateStockRequest{StockLevel: intPtr(0)})
	if err != nil {
		t.Fatalf("update stock: %v", err)
	}
	if got.Available || got.StockLevel != 0 {
		t.Fatalf("out of stock item must be unavailable: %+v", got)
	}

	got, _ = svc.UpdateStock(ctx, item.ID.Hex(), UpdateStockRequest{StockLevel: intPtr(12)})
	if !got.Available || got.StockLevel != 12 {
		t.Fatalf("restocked item must be available: %+v", got)
	}

	_, err = svc.UpdateStock(ctx, primitive.NewObjectID().Hex(), UpdateStockRequest{StockLevel: intPtr(3)})
	assertKind(t, err, KindNotFound)

	if _, err := svc.UpdateStock(ctx, item.ID.Hex(), UpdateStockRequest{StockLevel: intPtr(-4)}); err == nil {
		t.Fatalf("negative stock must be rejected")
	}
}
