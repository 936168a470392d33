package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, c *controller.MenuController) {
	router.Handle("/menu", controller.Handler(c.List)).Methods(http.MethodGet)
	router.Handle("/menu/category/{category}", controller.Handler(c.ListByCategory)).Methods(http.MethodGet)
	router.Handle("/menu/{id}", controller.Handler(c.Get)).Methods(http.MethodGet)
}
