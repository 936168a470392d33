package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type CartController struct {
	cart *service.CartService
}

func NewCartController(cart *service.CartService) *CartController {
	return &CartController{cart: cart}
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	view, err := c.cart.Get(ctx, mux.Vars(r)["sessionId"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": view})
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	view, err := c.cart.Add(ctx, req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Item added to cart",
		"data":    view,
	})
}

func (c *CartController) Update(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.UpdateCartRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	view, err := c.cart.Update(ctx, req)
	if err != nil {
		return err
	}

	message := "Cart updated"
	if *req.Quantity == 0 {
		message = "Item removed from cart"
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": message,
		"data":    view,
	})
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.RemoveFromCartRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	view, err := c.cart.Remove(ctx, req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Item removed from cart",
		"data":    view,
	})
}
