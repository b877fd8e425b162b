package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

// UserAuthenticator is the part of UserService the auth flows rely on.
type UserAuthenticator interface {
	ReadUsers(ctx context.Context, q models.ReadQualifier, requirePrivate, precise bool) (*envelope.Envelope[[]models.User], error)
	CheckUserPassword(user models.User, currentPassword string) bool
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userUUID string) (string, error)
}

// SessionStore keeps the current refresh token of each user.
type SessionStore interface {
	SaveRefreshToken(ctx context.Context, userUUID, token string) error
	GetRefreshToken(ctx context.Context, userUUID string) (string, error)
	DeleteRefreshToken(ctx context.Context, userUUID string) error
}

// AuthService handles sign-in, token refresh and sign-out.
type AuthService struct {
	users    UserAuthenticator
	tokens   TokenGenerator
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserAuthenticator, tokens TokenGenerator, sessions SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		sessions: sessions,
	}
}

// SignIn authenticates a user by username and password and issues tokens.
func (svc *AuthService) SignIn(ctx context.Context, username, password string) (*envelope.Envelope[models.SignInResult], error) {
	b := envelope.New(envelope.OpSignIn)
	resCtx := envelope.Context{"username": username}

	readRes, err := svc.users.ReadUsers(ctx, models.ByUsername(username), true, true)
	if err != nil {
		return nil, err
	}
	user := readRes.Payload[0]

	if !svc.users.CheckUserPassword(user, password) {
		logger.FromContext(ctx).Infow("invalid credentials", "username", username)
		return nil, b.Failure(envelope.CodePasswordsDontMatch, resCtx)
	}

	tokens, err := svc.issue(ctx, user.UserUUID)
	if err != nil {
		return nil, err
	}

	return envelope.Success(b, resCtx, models.SignInResult{
		User:         user.Public(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}), nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (svc *AuthService) Refresh(ctx context.Context, userUUID, refreshToken string) (*envelope.Envelope[models.Tokens], error) {
	b := envelope.New(envelope.OpRefresh)
	resCtx := envelope.Context{"uuid": userUUID}

	stored, err := svc.sessions.GetRefreshToken(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repoerr.ErrSessionNotFound) {
			return nil, b.Failure(envelope.CodeInvalidToken, resCtx)
		}
		logger.FromContext(ctx).Errorw("failed to get refresh token", "uuid", userUUID, "error", err)
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return nil, b.Failure(envelope.CodeInvalidToken, resCtx)
	}

	// the user may have been deleted since sign-in
	if _, err := svc.users.ReadUsers(ctx, models.ByUUID(userUUID), false, false); err != nil {
		return nil, err
	}

	tokens, err := svc.issue(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	return envelope.Success(b, resCtx, tokens), nil
}

// SignOut revokes the refresh token of the user.
func (svc *AuthService) SignOut(ctx context.Context, userUUID string) (*envelope.Envelope[any], error) {
	b := envelope.New(envelope.OpSignOut)

	if err := svc.sessions.DeleteRefreshToken(ctx, userUUID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete refresh token", "uuid", userUUID, "error", err)
		return nil, err
	}

	return envelope.Success[any](b, envelope.Context{"uuid": userUUID}, nil), nil
}

// issue generates an access token and stores a new refresh token.
func (svc *AuthService) issue(ctx context.Context, userUUID string) (models.Tokens, error) {
	access, err := svc.tokens.Generate(ctx, userUUID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "uuid", userUUID, "error", err)
		return models.Tokens{}, err
	}

	refresh := uuid.NewString()
	if err := svc.sessions.SaveRefreshToken(ctx, userUUID, refresh); err != nil {
		logger.FromContext(ctx).Errorw("failed to save refresh token", "uuid", userUUID, "error", err)
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
