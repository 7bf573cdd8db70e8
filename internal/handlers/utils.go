package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/libreria/apiserver/internal/auth"
	"github.com/libreria/apiserver/internal/validate"
)

type contextKey string

const contextClaimsKey contextKey = "claims"

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every violated field rule for one
// request.
type ValidationErrorResponse struct {
	Errors []validate.FieldError `json:"errors"`
}

func claimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(contextClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.New("missing claims")
	}
	return claims, nil
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
}
