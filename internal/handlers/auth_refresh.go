package handlers

//go:generate mockgen -source=auth_refresh.go -destination=auth_refresh_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// TokenRefresher defines the interface that the service must implement.
type TokenRefresher interface {
	Refresh(ctx context.Context, userUUID, refreshToken string) (*envelope.Envelope[models.Tokens], error)
}

// NewRefreshHandler returns an HTTP handler that rotates a token pair.
// @Summary Refresh tokens
// @Description Exchanges the current refresh token for a new access and refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshData body models.RefreshData true "Refresh request"
// @Success 200 {object} handlers.TokensResponse "New tokens"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 401 {object} handlers.ErrorResponse "Unknown or revoked refresh token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc TokenRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RefreshData
		if err := decodeAndValidate(r, envelope.OpRefresh, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.Refresh(r.Context(), req.UserUUID, req.RefreshToken)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
