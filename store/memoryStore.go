package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

// The Memory* stores keep documents in process. They back STORAGE_DRIVER=memory
// and the unit tests, and follow the same contracts as the Mongo stores.

type MemoryMenuStore struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]models.MenuItem
}

func NewMemoryMenuStore() *MemoryMenuStore {
	return &MemoryMenuStore{items: make(map[primitive.ObjectID]models.MenuItem)}
}

func (s *MemoryMenuStore) List(_ context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, 0, len(s.items))
	for _, item := range s.items {
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.Available != nil && item.Available != *filter.Available {
			continue
		}
		out = append(out, cloneMenuItem(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *MemoryMenuStore) Get(_ context.Context, id string) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[oid]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}
	return cloneMenuItem(item), nil
}

func (s *MemoryMenuStore) Create(_ context.Context, item *models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items[item.ID] = cloneMenuItem(*item)
	return nil
}

func (s *MemoryMenuStore) Update(_ context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[oid]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}
	applyMenuPatch(&item, patch)
	item.Updated_at = time.Now()
	s.items[oid] = item
	return cloneMenuItem(item), nil
}

func (s *MemoryMenuStore) Delete(_ context.Context, id string) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[oid]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}
	delete(s.items, oid)
	return item, nil
}

func (s *MemoryMenuStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func applyMenuPatch(item *models.MenuItem, patch models.MenuItemPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.PreparationTime != nil {
		item.PreparationTime = *patch.PreparationTime
	}
	if patch.Tags != nil {
		item.Tags = append([]string{}, (*patch.Tags)...)
	}
	if patch.StockLevel != nil {
		level := *patch.StockLevel
		item.StockLevel = &level
	}
}

func cloneMenuItem(item models.MenuItem) models.MenuItem {
	item.Tags = append([]string{}, item.Tags...)
	if item.StockLevel != nil {
		level := *item.StockLevel
		item.StockLevel = &level
	}
	return item
}

// MemorySessionStore treats sessions past expiresAt as deleted, matching the
// TTL index used by the Mongo store, and prunes them as it goes.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.Session)}
}

func (s *MemorySessionStore) FindActiveByTable(_ context.Context, tableNumber int, now time.Time) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)

	for _, session := range s.sessions {
		if session.TableNumber == tableNumber && session.IsActiveAt(now) {
			return cloneSession(session), nil
		}
	}
	return models.Session{}, ErrNotFound
}

func (s *MemorySessionStore) FindByID(_ context.Context, sessionID string, now time.Time) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return cloneSession(session), nil
}

func (s *MemorySessionStore) Create(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.ID.IsZero() {
		session.ID = primitive.NewObjectID()
	}
	s.sessions[session.SessionID] = cloneSession(*session)
	return nil
}

func (s *MemorySessionStore) SaveCart(_ context.Context, sessionID string, cart []models.CartLine, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Cart = append([]models.CartLine{}, cart...)
	session.Updated_at = now
	s.sessions[sessionID] = session
	return nil
}

func (s *MemorySessionStore) pruneLocked(now time.Time) {
	for id, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, id)
		}
	}
}

func cloneSession(session models.Session) models.Session {
	session.Cart = append([]models.CartLine{}, session.Cart...)
	return session
}

type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, cloneOrder(*order))
	return nil
}

func (s *MemoryOrderStore) Get(_ context.Context, id string) (models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == oid {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryOrderStore) ListBySession(_ context.Context, sessionID string) ([]models.Order, error) {
	return s.collect(func(o models.Order) bool { return o.SessionID == sessionID }), nil
}

func (s *MemoryOrderStore) ListByTable(_ context.Context, tableNumber int) ([]models.Order, error) {
	return s.collect(func(o models.Order) bool { return o.TableNumber == tableNumber }), nil
}

func (s *MemoryOrderStore) List(_ context.Context, filter models.OrderFilter) ([]models.Order, int64, error) {
	matched := s.collect(func(o models.Order) bool {
		if filter.Status != nil && o.Status != *filter.Status {
			return false
		}
		if filter.From != nil && o.Created_at.Before(*filter.From) {
			return false
		}
		if filter.To != nil && o.Created_at.After(*filter.To) {
			return false
		}
		return true
	})

	total := int64(len(matched))
	start := filter.Skip
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < total {
		end = start + filter.Limit
	}
	return matched[start:end], total, nil
}

func (s *MemoryOrderStore) UpdateStatus(_ context.Context, id, status string, now time.Time) (models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == oid {
			s.orders[i].Status = status
			s.orders[i].Updated_at = now
			return cloneOrder(s.orders[i]), nil
		}
	}
	return models.Order{}, ErrNotFound
}

func (s *MemoryOrderStore) Stats(_ context.Context, dayStart, dayEnd time.Time) (models.OrderStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.OrderStats{StatusBreakdown: map[string]int64{}}
	popular := map[primitive.ObjectID]*models.PopularItem{}

	for _, o := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.Total
		stats.StatusBreakdown[o.Status]++
		if !o.Created_at.Before(dayStart) && o.Created_at.Before(dayEnd) {
			stats.TodayOrders++
			stats.TodayRevenue += o.Total
		}
		for _, line := range o.Items {
			p, ok := popular[line.MenuItemID]
			if !ok {
				p = &models.PopularItem{MenuItemID: line.MenuItemID, Name: line.Name}
				popular[line.MenuItemID] = p
			}
			p.TotalOrdered += line.Quantity
			p.Revenue += line.Subtotal()
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrder = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	for _, p := range popular {
		stats.PopularItems = append(stats.PopularItems, *p)
	}
	sort.Slice(stats.PopularItems, func(i, j int) bool {
		if stats.PopularItems[i].TotalOrdered != stats.PopularItems[j].TotalOrdered {
			return stats.PopularItems[i].TotalOrdered > stats.PopularItems[j].TotalOrdered
		}
		return stats.PopularItems[i].Name < stats.PopularItems[j].Name
	})
	if len(stats.PopularItems) > 5 {
		stats.PopularItems = stats.PopularItems[:5]
	}

	recent := s.sortedLocked(func(models.Order) bool { return true })
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentOrders = recent
	return stats, nil
}

// collect returns matching orders, newest first.
func (s *MemoryOrderStore) collect(match func(models.Order) bool) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(match)
}

func (s *MemoryOrderStore) sortedLocked(match func(models.Order) bool) []models.Order {
	out := []models.Order{}
	for _, o := range s.orders {
		if match(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created_at.After(out[j].Created_at)
	})
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderLine{}, o.Items...)
	return o
}

type MemoryAdminUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.AdminUser
}

func NewMemoryAdminUserStore() *MemoryAdminUserStore {
	return &MemoryAdminUserStore{users: make(map[primitive.ObjectID]models.AdminUser)}
}

func (s *MemoryAdminUserStore) FindByUsername(_ context.Context, username string) (models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.AdminUser{}, ErrNotFound
}

func (s *MemoryAdminUserStore) FindByID(_ context.Context, id string) (models.AdminUser, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.AdminUser{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[oid]
	if !ok {
		return models.AdminUser{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryAdminUserStore) Create(_ context.Context, user *models.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryAdminUserStore) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[oid]
	if !ok {
		return ErrNotFound
	}
	u.LastLogin = &at
	u.Updated_at = at
	s.users[oid] = u
	return nil
}

// SetActive toggles an account; used by tests and tooling.
func (s *MemoryAdminUserStore) SetActive(id primitive.ObjectID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.IsActive = active
		s.users[id] = u
	}
}
