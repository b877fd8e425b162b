package handlers

//go:generate mockgen -source=auth_signin.go -destination=auth_signin_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// SignInner defines the interface that the service must implement.
type SignInner interface {
	SignIn(ctx context.Context, username, password string) (*envelope.Envelope[models.SignInResult], error)
}

// NewSignInHandler returns an HTTP handler for user sign-in.
// @Summary Sign in
// @Description Authenticates a user by exact username and password and returns an access token with a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signInData body models.SignInData true "Sign-in request"
// @Success 201 {object} handlers.SignInResponse "Signed in"
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 403 {object} handlers.ErrorResponse "Password does not match"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signin [post]
func NewSignInHandler(svc SignInner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignInData
		if err := decodeAndValidate(r, envelope.OpSignIn, &req); err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.SignIn(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}
