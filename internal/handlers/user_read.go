package handlers

//go:generate mockgen -source=user_read.go -destination=user_read_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// UserReader defines the interface that the service must implement.
type UserReader interface {
	ReadUsers(ctx context.Context, q models.ReadQualifier, requirePrivate, precise bool) (*envelope.Envelope[[]models.User], error)
}

// NewReadUsersHandler returns an HTTP handler for reading users.
// @Summary Read users
// @Description Reads users by username, by UUID, or by an inclusive id range. Exactly one form must be given. Usernames match case-insensitively.
// @Tags users
// @Produce json
// @Param username query string false "Username"
// @Param userUUID query string false "User UUID"
// @Param startId query int false "First id of the range"
// @Param endId query int false "Last id of the range"
// @Success 200 {object} handlers.UsersResponse "Matching users"
// @Failure 400 {object} handlers.ErrorResponse "Invalid qualifier"
// @Failure 404 {object} handlers.ErrorResponse "No matching users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/read [get]
func NewReadUsersHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseReadQualifier(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		res, err := svc.ReadUsers(r.Context(), q, false, false)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, envelope.Envelope[[]models.UserPublic]{
			Message: res.Message,
			Payload: models.PublicUsers(res.Payload),
		})
	}
}

// parseReadQualifier accepts exactly one of username, userUUID or the
// startId/endId pair.
func parseReadQualifier(r *http.Request) (models.ReadQualifier, error) {
	b := envelope.New(envelope.OpRead)
	query := r.URL.Query()
	username := query.Get("username")
	userUUID := query.Get("userUUID")
	startRaw, endRaw := query.Get("startId"), query.Get("endId")

	forms := 0
	for _, set := range []bool{username != "", userUUID != "", startRaw != "" || endRaw != ""} {
		if set {
			forms++
		}
	}
	if forms != 1 {
		return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"qualifier": "exactly one of username, userUUID, startId+endId"})
	}

	switch {
	case username != "":
		if err := validate.Var(username, "max=50"); err != nil {
			return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"username": "max"})
		}
		return models.ByUsername(username), nil
	case userUUID != "":
		if err := validate.Var(userUUID, "uuid"); err != nil {
			return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"userUUID": "uuid"})
		}
		return models.ByUUID(userUUID), nil
	}

	startID, err := strconv.ParseInt(startRaw, 10, 64)
	if err != nil || startID < 1 {
		return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"startId": "min"})
	}
	endID, err := strconv.ParseInt(endRaw, 10, 64)
	if err != nil || endID < 1 {
		return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"endId": "min"})
	}
	if startID > endID {
		return models.ReadQualifier{}, b.Failure(envelope.CodeValidation, envelope.Context{"endId": "gtefield"})
	}
	return models.ByRange(startID, endID), nil
}
