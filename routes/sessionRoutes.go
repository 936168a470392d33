package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/gorilla/mux"
)

func SessionRoutes(router *mux.Router, c *controller.SessionController) {
	router.Handle("/sessions/scan", controller.Handler(c.Scan)).Methods(http.MethodPost)
	router.Handle("/sessions/{sessionId}", controller.Handler(c.Get)).Methods(http.MethodGet)
}
