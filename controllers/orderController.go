package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type OrderController struct {
	orders *service.OrderService
}

func NewOrderController(orders *service.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.SubmitOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	order, err := c.orders.Submit(ctx, req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusCreated, map[string]interface{}{
		"message": "Order submitted successfully",
		"data": map[string]interface{}{
			"orderNumber": order.OrderNumber,
			"orderId":     order.ID,
			"tableNumber": order.TableNumber,
			"items":       order.Items,
			"subtotal":    order.Subtotal,
			"tax":         order.Tax,
			"serviceFee":  order.ServiceFee,
			"total":       order.Total,
			"status":      order.Status,
			"createdAt":   order.Created_at,
		},
	})
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	order, err := c.orders.Get(ctx, mux.Vars(r)["orderId"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": order})
}

func (c *OrderController) ListBySession(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	orders, err := c.orders.ListBySession(ctx, mux.Vars(r)["sessionId"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"count": len(orders),
		"data":  orders,
	})
}

func (c *OrderController) ListByTable(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	tableNumber, err := strconv.Atoi(mux.Vars(r)["tableNumber"])
	if err != nil {
		return service.ValidationError("Invalid table number")
	}

	orders, err := c.orders.ListByTable(ctx, tableNumber)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"tableNumber": tableNumber,
		"count":       len(orders),
		"data":        orders,
	})
}

// AdminList pages through orders with optional status and date filters.
func (c *OrderController) AdminList(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	q := r.URL.Query()
	query := service.ListOrdersQuery{
		Status:    q.Get("status"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	query.Page, _ = strconv.Atoi(q.Get("page"))
	query.Limit, _ = strconv.Atoi(q.Get("limit"))

	page, err := c.orders.List(ctx, query)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"count":      len(page.Orders),
		"totalCount": page.TotalCount,
		"page":       page.Page,
		"totalPages": page.TotalPages,
		"data":       page.Orders,
	})
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	order, err := c.orders.UpdateStatus(ctx, mux.Vars(r)["id"], req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Order status updated successfully",
		"data":    order,
	})
}
