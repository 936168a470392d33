package controller

import (
	"net/http"

	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type AuthController struct {
	auth *service.AuthService
}

func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	result, err := c.auth.Login(ctx, req)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"data":    result,
	})
}

// Me describes the caller. The static admin token has no account behind it.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return service.UnauthorizedError("Access denied. No token provided.")
	}
	if principal.Static {
		return respond(w, http.StatusOK, map[string]interface{}{
			"data": service.UserView{
				Username: principal.Username,
				Name:     "Static admin token",
				Role:     principal.Role,
			},
		})
	}

	user, err := c.auth.CurrentUser(ctx, principal.UserID)
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": user})
}
