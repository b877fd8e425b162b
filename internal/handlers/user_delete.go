package handlers

//go:generate mockgen -source=user_delete.go -destination=user_delete_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userUUID, currentPassword string) (*envelope.Envelope[any], error)
}

// NewDeleteUserHandler returns an HTTP handler for user deletion.
// @Summary Delete a user
// @Description Deletes a user after checking its current password.
// @Tags users
// @Accept json
// @Produce json
// @Param userDeleteData body models.UserDeleteData true "User deletion request"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Current password does not match"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/delete [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserDeleteData
		if err := decodeAndValidate(r, envelope.OpDelete, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.DeleteUser(r.Context(), req.UserUUID, req.CurrentPassword)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
