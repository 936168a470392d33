package controller

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type MenuController struct {
	menus *service.MenuService
}

func NewMenuController(menus *service.MenuService) *MenuController {
	return &MenuController{menus: menus}
}

// List serves the public menu; ?available=false includes unavailable items.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	available := r.URL.Query().Get("available") != "false"
	filter := models.MenuFilter{}
	if available {
		filter.Available = &available
	}

	items, err := c.menus.List(ctx, filter)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"data":  items,
	})
}

func (c *MenuController) ListByCategory(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	category := mux.Vars(r)["category"]
	items, err := c.menus.ListByCategory(ctx, category)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"count":    len(items),
		"data":     items,
	})
}

func (c *MenuController) Get(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	item, err := c.menus.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": item})
}

// AdminList returns every item, optionally narrowed by category and availability.
func (c *MenuController) AdminList(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var filter models.MenuFilter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := r.URL.Query().Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return service.ValidationError("available must be true or false")
		}
		filter.Available = &available
	}

	items, err := c.menus.List(ctx, filter)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"count": len(items),
		"data":  items,
	})
}

func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.CreateMenuItemRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	item, err := c.menus.Create(ctx, req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusCreated, map[string]interface{}{
		"message": "Menu item created successfully",
		"data":    item,
	})
}

func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var patch models.MenuItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		return err
	}

	item, err := c.menus.Update(ctx, mux.Vars(r)["id"], patch)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Menu item updated successfully",
		"data":    item,
	})
}

func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	item, err := c.menus.Delete(ctx, mux.Vars(r)["id"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Menu item deleted successfully",
		"data":    map[string]interface{}{"id": item.ID, "name": item.Name},
	})
}
