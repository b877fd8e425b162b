package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/middlewares"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

// storeFaults translates repository faults into service codes. Faults not
// listed here are returned to the caller unchanged.
var storeFaults = []struct {
	err  error
	code envelope.ServiceCode
}{
	{repoerr.ErrUsernameTaken, envelope.CodeDuplicateUsername},
	{repoerr.ErrEmailTaken, envelope.CodeDuplicateEmail},
	{repoerr.ErrUUIDTaken, envelope.CodeDuplicateUUID},
	{repoerr.ErrUserNotFound, envelope.CodeNotFound},
	{repoerr.ErrUnexpectedSchema, envelope.CodeUnexpectedDBError},
	{repoerr.ErrSessionNotFound, envelope.CodeInvalidToken},
}

// serviceCode returns the service code of a recognized repository fault.
func serviceCode(err error) (envelope.ServiceCode, bool) {
	for _, f := range storeFaults {
		if errors.Is(err, f.err) {
			return f.code, true
		}
	}
	return "", false
}

// mapFault turns a recognized repository fault into a failure of b, and
// returns any other error as is.
func mapFault(b envelope.Builder, err error, ctx envelope.Context) error {
	code, ok := serviceCode(err)
	if !ok {
		return err
	}
	return b.Failure(code, ctx)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	ReadUsers(ctx context.Context, q models.ReadQualifier, requirePrivate, precise bool) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	InsertUser(ctx context.Context, u models.UserInsert) error
	UpdateUser(ctx context.Context, u models.UserUpdate) error
	DeleteUser(ctx context.Context, userUUID string) error
}

// PasswordHasher turns plaintext passwords into their stored form.
type PasswordHasher interface {
	Hash(password string) string
	Compare(hash, password string) bool
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// UserService handles user account operations.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	hasher      PasswordHasher
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		hasher:      hasher,
		kafkaWriter: kafkaWriter,
	}
}

// CreateUser stores a new user with a freshly generated UUID.
func (s *UserService) CreateUser(ctx context.Context, data models.UserCreateData) (*envelope.Envelope[any], error) {
	b := envelope.New(envelope.OpCreate)
	resCtx := envelope.Context{"username": data.Username}

	insert := models.UserInsert{
		UserUUID:  uuid.NewString(),
		Username:  data.Username,
		Password:  s.hasher.Hash(data.Password),
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}

	if err := s.writer.InsertUser(ctx, insert); err != nil {
		logger.FromContext(ctx).Errorw("failed to insert user", "username", data.Username, "error", err)
		return nil, mapFault(b, err, resCtx)
	}

	s.publishEvent(ctx, models.EventCreate, insert.UserUUID, insert.Username)

	return envelope.Success[any](b, resCtx, nil), nil
}

// ReadUsers returns the users selected by q. The password hash is only
// present when requirePrivate is set.
func (s *UserService) ReadUsers(ctx context.Context, q models.ReadQualifier, requirePrivate, precise bool) (*envelope.Envelope[[]models.User], error) {
	b := envelope.New(envelope.OpRead)

	users, err := s.reader.ReadUsers(ctx, q, requirePrivate, precise)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to read users", "qualifier", q.String(), "error", err)
		return nil, mapFault(b, err, nil)
	}

	if len(users) == 0 {
		var resCtx envelope.Context
		if q.IsString() {
			resCtx = envelope.Context{"qualifier": q.Value}
		}
		return nil, b.Failure(envelope.CodeNotFound, resCtx)
	}

	for _, u := range users {
		if u.UserUUID == "" {
			logger.FromContext(ctx).Errorw("user row without uuid", "qualifier", q.String(), "id", u.ID)
			return nil, b.Failure(envelope.CodeUnexpectedDBError, nil)
		}
	}

	return envelope.Success(b, envelope.Context{"amount": len(users)}, users), nil
}

// UpdateUser applies data to the user once its current password is proven
// and returns the updated public record.
func (s *UserService) UpdateUser(ctx context.Context, data models.UserUpdateData) (*envelope.Envelope[models.UserPublic], error) {
	b := envelope.New(envelope.OpUpdate)
	resCtx := envelope.Context{"uuid": data.UserUUID}

	ok, err := s.CheckPassword(ctx, data.UserUUID, data.CurrentPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, b.Failure(envelope.CodePasswordsDontMatch, resCtx)
	}

	update := models.UserUpdate{
		UserUUID:  data.UserUUID,
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
	if data.Password != nil {
		hashed := s.hasher.Hash(*data.Password)
		update.Password = &hashed
	}

	if err := s.writer.UpdateUser(ctx, update); err != nil {
		logger.FromContext(ctx).Errorw("failed to update user", "uuid", data.UserUUID, "error", err)
		return nil, mapFault(b, err, resCtx)
	}

	readRes, err := s.ReadUsers(ctx, models.ByUUID(data.UserUUID), false, false)
	if err != nil {
		return nil, err
	}
	updated := readRes.Payload[0]

	s.publishEvent(ctx, models.EventUpdate, updated.UserUUID, updated.Username)

	return envelope.Success(b, resCtx, updated.Public()), nil
}

// DeleteUser removes the user once its current password is proven.
func (s *UserService) DeleteUser(ctx context.Context, userUUID, currentPassword string) (*envelope.Envelope[any], error) {
	b := envelope.New(envelope.OpDelete)
	resCtx := envelope.Context{"uuid": userUUID}

	ok, err := s.CheckPassword(ctx, userUUID, currentPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, b.Failure(envelope.CodePasswordsDontMatch, resCtx)
	}

	if err := s.writer.DeleteUser(ctx, userUUID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete user", "uuid", userUUID, "error", err)
		return nil, mapFault(b, err, resCtx)
	}

	s.publishEvent(ctx, models.EventDelete, userUUID, "")

	return envelope.Success[any](b, resCtx, nil), nil
}

// CheckPassword reads the user by UUID and compares currentPassword with
// the stored hash. Read failures, including NOT_FOUND, are returned.
func (s *UserService) CheckPassword(ctx context.Context, userUUID, currentPassword string) (bool, error) {
	readRes, err := s.ReadUsers(ctx, models.ByUUID(userUUID), true, false)
	if err != nil {
		return false, err
	}
	return s.CheckUserPassword(readRes.Payload[0], currentPassword), nil
}

// CheckUserPassword compares currentPassword with the hash stored on user.
func (s *UserService) CheckUserPassword(user models.User, currentPassword string) bool {
	return s.hasher.Compare(user.Password, currentPassword)
}

// publishEvent publishes a user lifecycle event to Kafka. Failures are logged only.
// When ctx carries a request transaction the event is sent after it commits
// and dropped if it rolls back.
func (s *UserService) publishEvent(ctx context.Context, operation, userUUID, username string) {
	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Debugw("Kafka writer not configured, skipping publishing", "operation", operation, "uuid", userUUID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserUUID:  userUUID,
		Username:  username,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal user event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserUUID),
		Value: data,
	}

	send := func() {
		if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
			logger.FromContext(ctx).Errorw("Failed to publish user event to Kafka", "event_id", event.EventID, "error", err)
		} else {
			logger.FromContext(ctx).Infow("User event published to Kafka", "event_id", event.EventID, "operation", operation)
		}
	}

	// inside a request transaction the event waits for the commit
	if !middlewares.AfterCommit(ctx, send) {
		send()
	}
}
