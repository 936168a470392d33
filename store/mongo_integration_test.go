//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

func startMongo(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	ctr, err := testcontainers.Run(ctx, "mongo:7",
		testcontainers.WithExposedPorts("27017/tcp"),
		testcontainers.WithWaitStrategy(wait.ForListeningPort("27017/tcp").WithStartupTimeout(time.Minute)),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("start mongo container: %v", err)
	}

	uri, err := ctr.PortEndpoint(ctx, "27017/tcp", "mongodb")
	if err != nil {
		t.Fatalf("mongo endpoint: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("quick_bite_test")
	if err := EnsureIndexes(ctx, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return db
}

func TestMongoStores(t *testing.T) {
	db := startMongo(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	menus := NewMongoMenuStore(db)
	item := models.MenuItem{Name: "Burger", Category: models.CategoryMainCourse, Price: 12.5, Available: true, Tags: []string{}}
	if err := menus.Create(ctx, &item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	level := 0
	available := false
	updated, err := menus.Update(ctx, item.ID.Hex(), models.MenuItemPatch{StockLevel: &level, Available: &available})
	if err != nil {
		t.Fatalf("update menu item: %v", err)
	}
	if updated.Available || updated.Stock() != 0 || updated.Name != "Burger" {
		t.Fatalf("unexpected updated item: %+v", updated)
	}

	sessions := NewMongoSessionStore(db)
	session := models.Session{
		SessionID:   "sess-1",
		TableNumber: 3,
		Cart:        []models.CartLine{},
		Status:      models.SessionActive,
		ExpiresAt:   now.Add(time.Hour),
		Created_at:  now,
		Updated_at:  now,
	}
	if err := sessions.Create(ctx, &session); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if _, err := sessions.FindActiveByTable(ctx, 3, now); err != nil {
		t.Fatalf("find active session: %v", err)
	}
	if _, err := sessions.FindByID(ctx, "sess-1", now.Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired session to be hidden, got %v", err)
	}
	cart := []models.CartLine{{MenuItemID: item.ID, Name: item.Name, Quantity: 2, Price: item.Price}}
	if err := sessions.SaveCart(ctx, "sess-1", cart, now); err != nil {
		t.Fatalf("save cart: %v", err)
	}
	got, _ := sessions.FindByID(ctx, "sess-1", now)
	if len(got.Cart) != 1 || got.Cart[0].Quantity != 2 {
		t.Fatalf("cart not persisted: %+v", got.Cart)
	}

	orders := NewMongoOrderStore(db)
	order := models.Order{
		OrderNumber: "ORD-TEST-0001",
		SessionID:   "sess-1",
		TableNumber: 3,
		Items:       []models.OrderLine{{MenuItemID: item.ID, Name: item.Name, Quantity: 2, Price: 12.5}},
		Subtotal:    25,
		Total:       28.25,
		Status:      models.OrderPending,
		Created_at:  now,
		Updated_at:  now,
	}
	if err := orders.Create(ctx, &order); err != nil {
		t.Fatalf("create order: %v", err)
	}
	dup := order
	dup.ID = primitive.NilObjectID
	if err := orders.Create(ctx, &dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate order number to be rejected, got %v", err)
	}

	stats, err := orders.Stats(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalOrders != 1 || stats.TodayOrders != 1 || stats.StatusBreakdown[models.OrderPending] != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(stats.PopularItems) != 1 || stats.PopularItems[0].TotalOrdered != 2 || stats.PopularItems[0].Revenue != 25 {
		t.Fatalf("unexpected popular items: %+v", stats.PopularItems)
	}

	users := NewMongoAdminUserStore(db)
	user := models.AdminUser{Username: "admin", Role: models.RoleAdmin, IsActive: true}
	if err := users.Create(ctx, &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := users.TouchLastLogin(ctx, user.ID.Hex(), now); err != nil {
		t.Fatalf("touch last login: %v", err)
	}
	stored, err := users.FindByUsername(ctx, "admin")
	if err != nil || stored.LastLogin == nil {
		t.Fatalf("last login missing: %v %+v", err, stored)
	}
}
