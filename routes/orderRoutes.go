package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, c *controller.OrderController) {
	router.Handle("/orders/submit", controller.Handler(c.Submit)).Methods(http.MethodPost)
	router.Handle("/orders/session/{sessionId}", controller.Handler(c.ListBySession)).Methods(http.MethodGet)
	router.Handle("/orders/table/{tableNumber}", controller.Handler(c.ListByTable)).Methods(http.MethodGet)
	router.Handle("/orders/{orderId}", controller.Handler(c.Get)).Methods(http.MethodGet)
}

func BillRoutes(router *mux.Router, c *controller.BillController) {
	router.Handle("/bill/{sessionId}", controller.Handler(c.Get)).Methods(http.MethodGet)
}
