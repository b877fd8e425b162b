package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// MessageResponse is a success envelope without payload.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Successfully create users: username 'alice'
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Service code, absent for internal errors
	// default: NOT_FOUND
	Code string `json:"code,omitempty"`

	// default: Failed to read users [NOT_FOUND]: qualifier 'alice'
	Message string `json:"message"`

	Payload map[string]any `json:"payload,omitempty"`
}

// UsersResponse is the envelope of a successful read.
// swagger:model UsersResponse
type UsersResponse struct {
	// default: Successfully read users: amount '1'
	Message string              `json:"message"`
	Payload []models.UserPublic `json:"payload"`
}

// UserResponse is the envelope of a successful update.
// swagger:model UserResponse
type UserResponse struct {
	// default: Successfully update users: uuid '5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88'
	Message string            `json:"message"`
	Payload models.UserPublic `json:"payload"`
}

// SignInResponse is the envelope of a successful sign-in.
// swagger:model SignInResponse
type SignInResponse struct {
	// default: Successfully sign in users: username 'alice'
	Message string              `json:"message"`
	Payload models.SignInResult `json:"payload"`
}

// TokensResponse is the envelope of a successful token refresh.
// swagger:model TokensResponse
type TokensResponse struct {
	// default: Successfully refresh users: uuid '5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88'
	Message string        `json:"message"`
	Payload models.Tokens `json:"payload"`
}

// statusByCode maps service codes to HTTP statuses.
var statusByCode = map[envelope.ServiceCode]int{
	envelope.CodeValidation:         http.StatusBadRequest,
	envelope.CodeNotFound:           http.StatusNotFound,
	envelope.CodePasswordsDontMatch: http.StatusForbidden,
	envelope.CodeDuplicateUsername:  http.StatusConflict,
	envelope.CodeDuplicateEmail:     http.StatusConflict,
	envelope.CodeDuplicateUUID:      http.StatusConflict,
	envelope.CodeInvalidToken:       http.StatusUnauthorized,
	envelope.CodeUnexpectedDBError:  http.StatusInternalServerError,
}

// StatusFor returns the HTTP status for a service code.
func StatusFor(code envelope.ServiceCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError renders a *envelope.Failure with its mapped status. Any other
// error is logged and rendered as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if f, ok := envelope.AsFailure(err); ok {
		writeJSON(w, StatusFor(f.Code), f)
		return
	}

	logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}
