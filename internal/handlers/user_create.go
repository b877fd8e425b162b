package handlers

//go:generate mockgen -source=user_create.go -destination=user_create_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, data models.UserCreateData) (*envelope.Envelope[any], error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user account. Username and email must be unique. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param userCreateData body models.UserCreateData true "User creation request"
// @Success 201 {object} handlers.MessageResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate username, email or uuid"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/create [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UserCreateData
		if err := decodeAndValidate(r, envelope.OpCreate, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.CreateUser(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}
