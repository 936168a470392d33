package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"github.com/02priyeshraj/Table_Ordering_Backend/helper"
	middleware "github.com/02priyeshraj/Table_Ordering_Backend/middlewares"
	service "github.com/02priyeshraj/Table_Ordering_Backend/services"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

const requestTimeout = 10 * time.Second

// Handler is an HTTP handler that reports failures as errors; ServeHTTP turns
// them into the JSON error envelope.
type Handler func(w http.ResponseWriter, r *http.Request) error

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h(w, r); err != nil {
		handleError(w, r, err)
	}
}

type badRequestError struct {
	message string
}

func (e badRequestError) Error() string {
	return e.message
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		classified *service.Error
		invalid    validator.ValidationErrors
		badRequest badRequestError
	)

	switch {
	case errors.As(err, &classified):
		helper.WriteError(w, classified.Kind.Status(), classified.Message, classified.Details...)
	case errors.As(err, &invalid):
		helper.WriteError(w, http.StatusBadRequest, "Validation Error", validationDetails(invalid)...)
	case errors.As(err, &badRequest):
		helper.WriteError(w, http.StatusBadRequest, badRequest.message)
	case errors.Is(err, store.ErrInvalidID):
		helper.WriteError(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, store.ErrDuplicate):
		helper.WriteError(w, http.StatusBadRequest, "Duplicate entry")
	default:
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		helper.WriteError(w, http.StatusInternalServerError, "Server Error")
	}
}

func validationDetails(errs validator.ValidationErrors) []string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			details = append(details, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			details = append(details, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "gte":
			details = append(details, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "min":
			details = append(details, fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param()))
		case "max":
			details = append(details, fmt.Sprintf("%s must have at most %s characters", fe.Field(), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return details
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return badRequestError{message: "Invalid request body"}
}

func withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func respond(w http.ResponseWriter, status int, body map[string]interface{}) error {
	body["success"] = true
	return helper.WriteJSON(w, status, body)
}
