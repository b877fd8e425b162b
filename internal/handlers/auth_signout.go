package handlers

//go:generate mockgen -source=auth_signout.go -destination=auth_signout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/middlewares"
)

// SignOuter defines the interface that the service must implement.
type SignOuter interface {
	SignOut(ctx context.Context, userUUID string) (*envelope.Envelope[any], error)
}

// NewSignOutHandler returns an HTTP handler that revokes the refresh token
// of the authenticated user.
// @Summary Sign out
// @Description Revokes the refresh token of the user identified by the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Signed out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signout [post]
// @Security BearerAuth
func NewSignOutHandler(svc SignOuter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userUUID, ok := middlewares.UserUUIDFromContext(r.Context())
		if !ok {
			logger.FromContext(r.Context()).Error("sign out without authenticated user")
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
			return
		}

		res, err := svc.SignOut(r.Context(), userUUID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
