package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/gorilla/mux"
)

var (
	staffRoles = []string{models.RoleAdmin, models.RoleKitchenStaff}
	adminRoles = []string{models.RoleAdmin}
)

type AdminControllers struct {
	Orders    *controller.OrderController
	Menu      *controller.MenuController
	Inventory *controller.InventoryController
	Analytics *controller.AnalyticsController
}

type adminRoute struct {
	method  string
	path    string
	handler controller.Handler
	roles   []string
}

// adminPolicy lists every admin endpoint with the roles allowed to call it.
func adminPolicy(c AdminControllers) []adminRoute {
	return []adminRoute{
		{http.MethodGet, "/orders", c.Orders.AdminList, staffRoles},
		{http.MethodGet, "/orders/{orderId}", c.Orders.Get, staffRoles},
		{http.MethodPatch, "/orders/{id}/status", c.Orders.UpdateStatus, staffRoles},

		{http.MethodGet, "/menu", c.Menu.AdminList, adminRoles},
		{http.MethodPost, "/menu", c.Menu.Create, adminRoles},
		{http.MethodPatch, "/menu/{id}", c.Menu.Update, adminRoles},
		{http.MethodDelete, "/menu/{id}", c.Menu.Delete, adminRoles},

		{http.MethodGet, "/inventory", c.Inventory.List, adminRoles},
		{http.MethodPatch, "/inventory/{id}", c.Inventory.UpdateStock, adminRoles},

		{http.MethodGet, "/analytics/dashboard", c.Analytics.Dashboard, adminRoles},
	}
}

func AdminRoutes(router *mux.Router, c AdminControllers, auth *middleware.Authenticator) {
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(auth.Authentication)

	for _, route := range adminPolicy(c) {
		admin.Handle(route.path, middleware.RequireRoles(route.roles...)(route.handler)).Methods(route.method)
	}
}
