package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type ScanRequest struct {
	TableNumber int `json:"tableNumber" validate:"required,gte=1"`
}

// SessionDetails is a session together with the orders placed under it.
type SessionDetails struct {
	models.Session
	Orders     []SessionOrder `json:"orders"`
	CartTotal  float64        `json:"cartTotal"`
	OrderTotal float64        `json:"orderTotal"`
}

type SessionOrder struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	Status      string             `json:"status"`
	Items       []models.OrderLine `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type SessionService struct {
	sessions SessionRepository
	orders   OrderRepository
	timeout  time.Duration
	now      func() time.Time
	newID    func() string
}

func NewSessionService(sessions SessionRepository, orders OrderRepository, timeout time.Duration) *SessionService {
	return &SessionService{
		sessions: sessions,
		orders:   orders,
		timeout:  timeout,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Scan returns the table's active session or opens a new one. The boolean
// reports whether a session was created.
func (s *SessionService) Scan(ctx context.Context, req ScanRequest) (models.Session, bool, error) {
	if err := validateStruct(req); err != nil {
		return models.Session{}, false, err
	}

	now := s.now()
	existing, err := s.sessions.FindActiveByTable(ctx, req.TableNumber, now)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Session{}, false, fmt.Errorf("find active session: %w", err)
	}

	session := models.Session{
		SessionID:   s.newID(),
		TableNumber: req.TableNumber,
		Cart:        []models.CartLine{},
		Status:      models.SessionActive,
		ExpiresAt:   now.Add(s.timeout),
		Created_at:  now,
		Updated_at:  now,
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return models.Session{}, false, fmt.Errorf("create session: %w", err)
	}
	return session, true, nil
}

func (s *SessionService) Get(ctx context.Context, sessionID string) (SessionDetails, error) {
	session, err := s.sessions.FindByID(ctx, sessionID, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return SessionDetails{}, NotFoundError("Session not found")
	}
	if err != nil {
		return SessionDetails{}, fmt.Errorf("find session: %w", err)
	}

	orders, err := s.orders.ListBySession(ctx, sessionID)
	if err != nil {
		return SessionDetails{}, fmt.Errorf("list session orders: %w", err)
	}

	details := SessionDetails{
		Session:   session,
		Orders:    make([]SessionOrder, 0, len(orders)),
		CartTotal: session.CartTotal(),
	}
	for _, o := range orders {
		details.OrderTotal += o.Subtotal
		details.Orders = append(details.Orders, SessionOrder{
			ID:          o.ID.Hex(),
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			Items:       o.Items,
			Subtotal:    o.Subtotal,
			CreatedAt:   o.Created_at,
		})
	}
	return details, nil
}

// activeSession loads a session that can still take cart changes and orders.
func activeSession(ctx context.Context, sessions SessionRepository, sessionID string, now time.Time) (models.Session, error) {
	session, err := sessions.FindByID(ctx, sessionID, now)
	if errors.Is(err, store.ErrNotFound) {
		return models.Session{}, NotFoundError("Active session not found")
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("find session: %w", err)
	}
	if !session.IsActiveAt(now) {
		return models.Session{}, NotFoundError("Active session not found")
	}
	return session, nil
}
