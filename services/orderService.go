package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type SubmitOrderRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Notes     string `json:"notes" validate:"max=1000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListOrdersQuery is the admin order listing filter; zero values mean "unset".
type ListOrdersQuery struct {
	Status    string
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type OrderPage struct {
	Orders     []models.Order
	TotalCount int64
	Page       int
	TotalPages int64
}

type OrderService struct {
	sessions SessionRepository
	orders   OrderRepository
	menus    MenuRepository
	rates    helper.BillRates
	log      *slog.Logger
	now      func() time.Time
}

func NewOrderService(sessions SessionRepository, orders OrderRepository, menus MenuRepository, rates helper.BillRates, log *slog.Logger) *OrderService {
	return &OrderService{
		sessions: sessions,
		orders:   orders,
		menus:    menus,
		rates:    rates,
		log:      log,
		now:      time.Now,
	}
}

// Submit turns the session's cart into an order and empties the cart.
//
// The order insert and the cart reset are two separate writes with no
// transaction around them. If the reset fails the order stays persisted and
// the cart keeps its lines, so a retry by the client would submit it twice.
func (s *OrderService) Submit(ctx context.Context, req SubmitOrderRequest) (models.Order, error) {
	if err := validateStruct(req); err != nil {
		return models.Order{}, err
	}

	now := s.now()
	session, err := activeSession(ctx, s.sessions, req.SessionID, now)
	if err != nil {
		return models.Order{}, err
	}
	if len(session.Cart) == 0 {
		return models.Order{}, ValidationError("Cart is empty")
	}

	items := make([]models.OrderLine, 0, len(session.Cart))
	for _, line := range session.Cart {
		items = append(items, models.OrderLine{
			MenuItemID:          line.MenuItemID,
			Name:                s.lineName(ctx, line),
			Quantity:            line.Quantity,
			Price:               line.Price,
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	// float line sums are brought back to cents before billing
	bill := helper.CalculateBill(helper.Round2(session.CartTotal()), s.rates)
	order := models.Order{
		OrderNumber: helper.GenerateOrderNumber(now),
		SessionID:   session.SessionID,
		TableNumber: session.TableNumber,
		Items:       items,
		Subtotal:    bill.Subtotal,
		Tax:         bill.Tax,
		ServiceFee:  bill.ServiceFee,
		Total:       bill.Total,
		Status:      models.OrderPending,
		Notes:       req.Notes,
		Created_at:  now,
		Updated_at:  now,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.sessions.SaveCart(ctx, session.SessionID, []models.CartLine{}, now); err != nil {
		s.log.ErrorContext(ctx, "order created but cart was not cleared",
			slog.String("order_number", order.OrderNumber),
			slog.String("session_id", session.SessionID),
			slog.String("error", err.Error()),
		)
		return models.Order{}, fmt.Errorf("clear cart after order %s: %w", order.OrderNumber, err)
	}

	s.log.InfoContext(ctx, "order submitted",
		slog.String("order_number", order.OrderNumber),
		slog.Int("table_number", order.TableNumber),
		slog.Float64("total", order.Total),
	)
	return order, nil
}

// lineName prefers the current catalog name and falls back to the one captured
// when the line was added, so deleted items still produce a readable order.
func (s *OrderService) lineName(ctx context.Context, line models.CartLine) string {
	item, err := s.menus.Get(ctx, line.MenuItemID.Hex())
	if err == nil {
		return item.Name
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.log.WarnContext(ctx, "menu lookup failed during submission",
			slog.String("menu_item_id", line.MenuItemID.Hex()),
			slog.String("error", err.Error()),
		)
	}
	return line.Name
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, NotFoundError("Order not found")
	}
	return order, err
}

func (s *OrderService) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	return s.orders.ListBySession(ctx, sessionID)
}

func (s *OrderService) ListByTable(ctx context.Context, tableNumber int) ([]models.Order, error) {
	if tableNumber < 1 {
		return nil, ValidationError("Invalid table number")
	}
	return s.orders.ListByTable(ctx, tableNumber)
}

// UpdateStatus accepts any known status regardless of the current one.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (models.Order, error) {
	if strings.TrimSpace(req.Status) == "" {
		return models.Order{}, ValidationError("Status is required")
	}
	if !models.IsOrderStatus(req.Status) {
		return models.Order{}, ValidationError("Invalid status. Must be one of: %s", strings.Join(models.OrderStatuses, ", "))
	}

	order, err := s.orders.UpdateStatus(ctx, id, req.Status, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return models.Order{}, NotFoundError("Order not found")
	}
	if err != nil {
		return models.Order{}, err
	}

	s.log.InfoContext(ctx, "order status updated",
		slog.String("order_number", order.OrderNumber),
		slog.String("status", order.Status),
	)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, q ListOrdersQuery) (OrderPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}

	filter := models.OrderFilter{
		Skip:  int64((page - 1) * limit),
		Limit: int64(limit),
	}
	if q.Status != "" {
		if !models.IsOrderStatus(q.Status) {
			return OrderPage{}, ValidationError("Invalid status. Must be one of: %s", strings.Join(models.OrderStatuses, ", "))
		}
		status := q.Status
		filter.Status = &status
	}
	if q.StartDate != "" {
		from, err := parseDate(q.StartDate, false)
		if err != nil {
			return OrderPage{}, ValidationError("Invalid startDate")
		}
		filter.From = &from
	}
	if q.EndDate != "" {
		to, err := parseDate(q.EndDate, true)
		if err != nil {
			return OrderPage{}, ValidationError("Invalid endDate")
		}
		filter.To = &to
	}

	orders, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return OrderPage{}, fmt.Errorf("list orders: %w", err)
	}

	return OrderPage{
		Orders:     orders,
		TotalCount: total,
		Page:       page,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// parseDate accepts RFC3339 timestamps or plain dates. A plain end date
// covers the whole day.
func parseDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
