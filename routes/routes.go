package routes

import (
	"log/slog"
	"net/http"

	controller "github.com/02priyeshraj/Table_Ordering_Backend/controllers"
	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	"github.com/gorilla/mux"
)

type Controllers struct {
	Sessions  *controller.SessionController
	Menu      *controller.MenuController
	Cart      *controller.CartController
	Orders    *controller.OrderController
	Bills     *controller.BillController
	Auth      *controller.AuthController
	Inventory *controller.InventoryController
	Analytics *controller.AnalyticsController
}

// NewRouter mounts every route under /api and wraps the router with the
// request-wide middlewares, so unmatched and preflight requests pass through them too.
func NewRouter(c Controllers, auth *middleware.Authenticator, loginLimiter middleware.Limiter, log *slog.Logger) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(NotFound)

	router.HandleFunc("/health", Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	SessionRoutes(api, c.Sessions)
	MenuRoutes(api, c.Menu)
	CartRoutes(api, c.Cart)
	OrderRoutes(api, c.Orders)
	BillRoutes(api, c.Bills)
	AuthRoutes(api, c.Auth, auth, middleware.RateLimit(loginLimiter, log))
	AdminRoutes(api, AdminControllers{
		Orders:    c.Orders,
		Menu:      c.Menu,
		Inventory: c.Inventory,
		Analytics: c.Analytics,
	}, auth)

	var handler http.Handler = router
	handler = middleware.CORS(handler)
	handler = middleware.Recover(log)(handler)
	handler = middleware.RequestLogger(log)(handler)
	return handler
}

func Health(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, helper.Response{Success: true, Message: "Server is running"})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	helper.WriteError(w, http.StatusNotFound, "Route not found")
}
