package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type BillLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type BillCart struct {
	Items    []BillLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

type BillOrder struct {
	OrderNumber string     `json:"orderNumber"`
	Status      string     `json:"status"`
	Items       []BillLine `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	ServiceFee  float64    `json:"serviceFee"`
	Total       float64    `json:"total"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type BillOrders struct {
	Count int         `json:"count"`
	Items []BillOrder `json:"items"`
	Total float64     `json:"total"`
}

type BillSummary struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	TaxRate        string  `json:"taxRate"`
	ServiceFee     float64 `json:"serviceFee"`
	ServiceFeeRate string  `json:"serviceFeeRate"`
	GrandTotal     float64 `json:"grandTotal"`
}

// SessionBill separates the open cart from submitted orders; only the orders
// count towards the summary.
type SessionBill struct {
	SessionID   string      `json:"sessionId"`
	TableNumber int         `json:"tableNumber"`
	Cart        BillCart    `json:"cart"`
	Orders      BillOrders  `json:"orders"`
	Summary     BillSummary `json:"summary"`
}

type BillService struct {
	sessions SessionRepository
	orders   OrderRepository
	rates    helper.BillRates
	now      func() time.Time
}

func NewBillService(sessions SessionRepository, orders OrderRepository, rates helper.BillRates) *BillService {
	return &BillService{sessions: sessions, orders: orders, rates: rates, now: time.Now}
}

func (s *BillService) Get(ctx context.Context, sessionID string) (SessionBill, error) {
	session, err := s.sessions.FindByID(ctx, sessionID, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return SessionBill{}, NotFoundError("Session not found")
	}
	if err != nil {
		return SessionBill{}, fmt.Errorf("find session: %w", err)
	}

	orders, err := s.orders.ListBySession(ctx, sessionID)
	if err != nil {
		return SessionBill{}, fmt.Errorf("list session orders: %w", err)
	}

	cart := BillCart{Items: make([]BillLine, 0, len(session.Cart)), Subtotal: helper.Round2(session.CartTotal())}
	for _, line := range session.Cart {
		cart.Items = append(cart.Items, BillLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Subtotal: helper.Round2(line.Price * float64(line.Quantity)),
		})
	}

	var ordersSubtotal float64
	billOrders := BillOrders{Count: len(orders), Items: make([]BillOrder, 0, len(orders))}
	for _, o := range orders {
		ordersSubtotal += o.Subtotal
		billOrders.Total += o.Total

		lines := make([]BillLine, 0, len(o.Items))
		for _, item := range o.Items {
			lines = append(lines, BillLine{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Subtotal: helper.Round2(item.Subtotal()),
			})
		}
		billOrders.Items = append(billOrders.Items, BillOrder{
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			Items:       lines,
			Subtotal:    o.Subtotal,
			Tax:         o.Tax,
			ServiceFee:  o.ServiceFee,
			Total:       o.Total,
			CreatedAt:   o.Created_at,
		})
	}

	billOrders.Total = helper.Round2(billOrders.Total)

	bill := helper.CalculateBill(helper.Round2(ordersSubtotal), s.rates)
	return SessionBill{
		SessionID:   session.SessionID,
		TableNumber: session.TableNumber,
		Cart:        cart,
		Orders:      billOrders,
		Summary: BillSummary{
			Subtotal:       bill.Subtotal,
			Tax:            bill.Tax,
			TaxRate:        helper.FormatRate(bill.TaxRate),
			ServiceFee:     bill.ServiceFee,
			ServiceFeeRate: helper.FormatRate(bill.ServiceFeeRate),
			GrandTotal:     bill.Total,
		},
	}, nil
}
