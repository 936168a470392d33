package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/gorilla/mux"
)

func CartRoutes(router *mux.Router, c *controller.CartController) {
	router.Handle("/cart/add", controller.Handler(c.Add)).Methods(http.MethodPost)
	router.Handle("/cart/update", controller.Handler(c.Update)).Methods(http.MethodPut)
	router.Handle("/cart/remove", controller.Handler(c.Remove)).Methods(http.MethodDelete)
	router.Handle("/cart/{sessionId}", controller.Handler(c.Get)).Methods(http.MethodGet)
}
