package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type InventoryController struct {
	inventory *service.InventoryService
}

func NewInventoryController(inventory *service.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

func (c *InventoryController) List(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	items, err := c.inventory.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"data":  items,
	})
}

func (c *InventoryController) UpdateStock(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.UpdateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	item, err := c.inventory.UpdateStock(ctx, mux.Vars(r)["id"], req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Inventory stock level updated successfully",
		"data":    item,
	})
}
