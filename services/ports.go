package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

// The repositories below are implemented by store.Mongo*Store and store.Memory*Store.
// Lookups return store.ErrNotFound when nothing matches and store.ErrInvalidID for
// malformed identifiers.

type MenuRepository interface {
	List(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error)
	Delete(ctx context.Context, id string) (models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	// FindActiveByTable ignores sessions whose expiresAt is not after now.
	FindActiveByTable(ctx context.Context, tableNumber int, now time.Time) (models.Session, error)
	// FindByID returns a session in any status as long as it has not expired.
	FindByID(ctx context.Context, sessionID string, now time.Time) (models.Session, error)
	Create(ctx context.Context, session *models.Session) error
	// SaveCart overwrites the whole cart; concurrent writers race, last write wins.
	SaveCart(ctx context.Context, sessionID string, cart []models.CartLine, now time.Time) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id string) (models.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.Order, error)
	ListByTable(ctx context.Context, tableNumber int) ([]models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string, now time.Time) (models.Order, error)
	Stats(ctx context.Context, dayStart, dayEnd time.Time) (models.OrderStats, error)
}

type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.AdminUser, error)
	FindByID(ctx context.Context, id string) (models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// Repositories bundles one implementation of every port.
type Repositories struct {
	Menus    MenuRepository
	Sessions SessionRepository
	Orders   OrderRepository
	Users    AdminUserRepository
}

func MongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Menus:    store.NewMongoMenuStore(db),
		Sessions: store.NewMongoSessionStore(db),
		Orders:   store.NewMongoOrderStore(db),
		Users:    store.NewMongoAdminUserStore(db),
	}
}

func MemoryRepositories() Repositories {
	return Repositories{
		Menus:    store.NewMemoryMenuStore(),
		Sessions: store.NewMemorySessionStore(),
		Orders:   store.NewMemoryOrderStore(),
		Users:    store.NewMemoryAdminUserStore(),
	}
}
