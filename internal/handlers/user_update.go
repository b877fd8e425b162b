package handlers

//go:generate mockgen -source=user_update.go -destination=user_update_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, data models.UserUpdateData) (*envelope.Envelope[models.UserPublic], error)
}

// NewUpdateUserHandler returns an HTTP handler for user updates.
// @Summary Update a user
// @Description Updates the given fields of a user after checking its current password. A new password must come with passwordConfirm.
// @Tags users
// @Accept json
// @Produce json
// @Param userUpdateData body models.UserUpdateData true "User update request"
// @Success 200 {object} handlers.UserResponse "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Current password does not match"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate username or email"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/update [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserUpdateData
		if err := decodeAndValidate(r, envelope.OpUpdate, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.MissingConfirm() {
			writeError(w, r, envelope.New(envelope.OpUpdate).Failure(envelope.CodeValidation, envelope.Context{"passwordConfirm": "required_with"}))
			return
		}

		res, err := svc.UpdateUser(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}
