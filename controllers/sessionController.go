package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
)

type SessionController struct {
	sessions *service.SessionService
}

func NewSessionController(sessions *service.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// Scan opens or resumes the table's session: 201 when created, 200 when resumed.
func (c *SessionController) Scan(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	var req service.ScanRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if req.TableNumber == 0 {
		return service.ValidationError("Table number is required")
	}

	session, created, err := c.sessions.Scan(ctx, req)
	if err != nil {
		return err
	}

	status, message := http.StatusOK, "Active session found"
	if created {
		status, message = http.StatusCreated, "Session created successfully"
	}
	return respond(w, status, map[string]interface{}{
		"message": message,
		"data": map[string]interface{}{
			"sessionId":   session.SessionID,
			"tableNumber": session.TableNumber,
			"cart":        session.Cart,
			"createdAt":   session.Created_at,
			"expiresAt":   session.ExpiresAt,
		},
	})
}

func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := withTimeout(r)
	defer cancel()

	details, err := c.sessions.Get(ctx, mux.Vars(r)["sessionId"])
	if err != nil {
		return err
	}
	return respond(w, http.StatusOK, map[string]interface{}{"data": details})
}
