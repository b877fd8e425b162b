package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := models.UserCreateData{
		Username:        "alice",
		Password:        "p@ss1234",
		PasswordConfirm: "p@ss1234",
		Email:           "alice@example.com",
	}
	b := envelope.New(envelope.OpCreate)

	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), valid).
					Return(envelope.Success[any](b, envelope.Context{"username": "alice"}, nil), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"message": "Successfully create users: username 'alice'"},
		},
		{
			name: "duplicate username",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), valid).
					Return(nil, b.Failure(envelope.CodeDuplicateUsername, envelope.Context{"username": "alice"}))
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{
				"code":    "DUPLICATE_USERNAME",
				"message": "Failed to create users [DUPLICATE_USERNAME]: username 'alice'",
				"payload": map[string]any{"username": "alice"},
			},
		},
		{
			name: "internal server error",
			body: valid,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().CreateUser(gomock.Any(), valid).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"message": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "VALIDATION",
				"message": "Failed to create users [VALIDATION]: body 'invalid json'",
				"payload": map[string]any{"body": "invalid json"},
			},
		},
		{
			name: "password confirmation mismatch",
			body: models.UserCreateData{
				Username:        "alice",
				Password:        "p@ss1234",
				PasswordConfirm: "p@ss4321",
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "VALIDATION",
				"message": "Failed to create users [VALIDATION]: passwordConfirm 'eqfield'",
				"payload": map[string]any{"passwordConfirm": "eqfield"},
			},
		},
		{
			name: "short username and password",
			body: models.UserCreateData{
				Username:        "al",
				Password:        "short",
				PasswordConfirm: "short",
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "VALIDATION",
				"message": "Failed to create users [VALIDATION]: password 'min', username 'min'",
				"payload": map[string]any{"username": "min", "password": "min"},
			},
		},
		{
			name: "bad email",
			body: models.UserCreateData{
				Username:        "alice",
				Password:        "p@ss1234",
				PasswordConfirm: "p@ss1234",
				Email:           "not-an-email",
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{
				"code":    "VALIDATION",
				"message": "Failed to create users [VALIDATION]: email 'email'",
				"payload": map[string]any{"email": "email"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/users/create", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/users/create", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}
