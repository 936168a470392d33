package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

var testRates = helper.BillRates{TaxRate: 0.08, ServiceFeeRate: 0.05}

type fixture struct {
	menus    *store.MemoryMenuStore
	sessions *store.MemorySessionStore
	orders   *store.MemoryOrderStore
	users    *store.MemoryAdminUserStore
	now      time.Time
	log      *slog.Logger
}

func newFixture() *fixture {
	return &fixture{
		menus:    store.NewMemoryMenuStore(),
		sessions: store.NewMemorySessionStore(),
		orders:   store.NewMemoryOrderStore(),
		users:    store.NewMemoryAdminUserStore(),
		now:      time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (f *fixture) clock() time.Time {
	return f.now
}

func (f *fixture) sessionService() *SessionService {
	svc := NewSessionService(f.sessions, f.orders, 2*time.Hour)
	svc.now = f.clock
	return svc
}

func (f *fixture) cartService() *CartService {
	svc := NewCartService(f.sessions, f.menus)
	svc.now = f.clock
	return svc
}

func (f *fixture) orderService() *OrderService {
	svc := NewOrderService(f.sessions, f.orders, f.menus, testRates, f.log)
	svc.now = f.clock
	return svc
}

func (f *fixture) billService() *BillService {
	svc := NewBillService(f.sessions, f.orders, testRates)
	svc.now = f.clock
	return svc
}

func (f *fixture) addMenuItem(t *testing.T, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:      name,
		Category:  models.CategoryMainCourse,
		Price:     price,
		Available: available,
		Tags:      []string{},
	}
	if err := f.menus.Create(context.Background(), &item); err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func (f *fixture) openSession(t *testing.T, table int) models.Session {
	t.Helper()
	session, _, err := f.sessionService().Scan(context.Background(), ScanRequest{TableNumber: table})
	if err != nil {
		t.Fatalf("scan table %d: %v", table, err)
	}
	return session
}

func intPtr(v int) *int {
	return &v
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if got := KindOf(err); got != want {
		t.Fatalf("expected error kind %d, got %d (%v)", want, got, err)
	}
}
