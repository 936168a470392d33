package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/gorilla/mux"
)

func AuthRoutes(router *mux.Router, c *controller.AuthController, auth *middleware.Authenticator, loginLimit mux.MiddlewareFunc) {
	router.Handle("/auth/admin/login", loginLimit(controller.Handler(c.Login))).Methods(http.MethodPost)

	me := auth.Authentication(middleware.RequireRoles(models.RoleAdmin, models.RoleKitchenStaff)(controller.Handler(c.Me)))
	router.Handle("/auth/admin/me", me).Methods(http.MethodGet)
}
