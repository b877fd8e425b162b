package services_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/repoerr"
)

// memoryStore is an in-memory UserReader/UserWriter with the same
// uniqueness and projection rules as the Postgres repositories.
type memoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  []models.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 1}
}

func (m *memoryStore) conflict(skipUUID, username, email string) error {
	for _, u := range m.users {
		if u.UserUUID == skipUUID {
			continue
		}
		if strings.EqualFold(u.Username, username) {
			return repoerr.ErrUsernameTaken
		}
		if email != "" && u.Email == email {
			return repoerr.ErrEmailTaken
		}
	}
	return nil
}

func (m *memoryStore) InsertUser(_ context.Context, in models.UserInsert) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.conflict("", in.Username, in.Email); err != nil {
		return err
	}
	now := time.Now()
	m.users = append(m.users, models.User{
		ID:        m.nextID,
		UserUUID:  in.UserUUID,
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		CreatedAt: now,
		UpdatedAt: now,
	})
	m.nextID++
	return nil
}

func (m *memoryStore) ReadUsers(_ context.Context, q models.ReadQualifier, requirePrivate, precise bool) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.User{}
	for _, u := range m.users {
		var match bool
		switch q.Kind {
		case models.QualifierUsername:
			match = u.Username == q.Value || (!precise && strings.EqualFold(u.Username, q.Value))
		case models.QualifierUUID:
			match = u.UserUUID == q.Value
		case models.QualifierRange:
			match = u.ID >= q.StartID && u.ID <= q.EndID
		}
		if !match {
			continue
		}
		if !requirePrivate {
			u.Password = ""
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryStore) UpdateUser(_ context.Context, up models.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		u := &m.users[i]
		if u.UserUUID != up.UserUUID {
			continue
		}
		username, email := u.Username, u.Email
		if up.Username != nil {
			username = *up.Username
		}
		if up.Email != nil {
			email = *up.Email
		}
		if err := m.conflict(u.UserUUID, username, email); err != nil {
			return err
		}
		u.Username, u.Email = username, email
		if up.FirstName != nil {
			u.FirstName = *up.FirstName
		}
		if up.LastName != nil {
			u.LastName = *up.LastName
		}
		if up.Password != nil {
			u.Password = *up.Password
		}
		u.UpdatedAt = time.Now()
		return nil
	}
	return repoerr.ErrUserNotFound
}

func (m *memoryStore) DeleteUser(_ context.Context, userUUID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.UserUUID == userUUID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return repoerr.ErrUserNotFound
}

func (m *memoryStore) get(userUUID string) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserUUID == userUUID {
			return u, true
		}
	}
	return models.User{}, false
}
