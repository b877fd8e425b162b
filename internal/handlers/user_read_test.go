package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-user-service/internal/envelope"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

func TestReadUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const id = "5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88"
	b := envelope.New(envelope.OpRead)
	alice := models.User{
		ID:        1,
		UserUUID:  id,
		Username:  "alice",
		Password:  "should-never-leak",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockUserReader)
		expectedCode int
		expectedMsg  string
		expectedCnt  int
	}{
		{
			name:  "by username",
			query: "?username=alice",
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), models.ByUsername("alice"), false, false).
					Return(envelope.Success(b, envelope.Context{"amount": 1}, []models.User{alice}), nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Successfully read users: amount '1'",
			expectedCnt:  1,
		},
		{
			name:  "by uuid",
			query: "?userUUID=" + id,
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), models.ByUUID(id), false, false).
					Return(envelope.Success(b, envelope.Context{"amount": 1}, []models.User{alice}), nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Successfully read users: amount '1'",
			expectedCnt:  1,
		},
		{
			name:  "by range",
			query: "?startId=1&endId=10",
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), models.ByRange(1, 10), false, false).
					Return(envelope.Success(b, envelope.Context{"amount": 2}, []models.User{alice, alice}), nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Successfully read users: amount '2'",
			expectedCnt:  2,
		},
		{
			name:  "not found",
			query: "?username=ghost",
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), models.ByUsername("ghost"), false, false).
					Return(nil, b.Failure(envelope.CodeNotFound, envelope.Context{"qualifier": "ghost"}))
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Failed to read users [NOT_FOUND]: qualifier 'ghost'",
		},
		{
			name:  "empty range",
			query: "?startId=100&endId=200",
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), models.ByRange(100, 200), false, false).
					Return(nil, b.Failure(envelope.CodeNotFound, nil))
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Failed to read users [NOT_FOUND]",
		},
		{
			name:  "internal error",
			query: "?username=alice",
			mockSetup: func(m *MockUserReader) {
				m.EXPECT().ReadUsers(gomock.Any(), gomock.Any(), false, false).
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
		{name: "no qualifier", query: "", expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: qualifier 'exactly one of username, userUUID, startId+endId'"},
		{name: "two qualifiers", query: "?username=alice&userUUID=" + id, expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: qualifier 'exactly one of username, userUUID, startId+endId'"},
		{name: "malformed uuid", query: "?userUUID=nope", expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: userUUID 'uuid'"},
		{name: "missing end", query: "?startId=1", expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: endId 'min'"},
		{name: "zero start", query: "?startId=0&endId=3", expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: startId 'min'"},
		{name: "reversed range", query: "?startId=5&endId=3", expectedCode: http.StatusBadRequest, expectedMsg: "Failed to read users [VALIDATION]: endId 'gtefield'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserReader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewReadUsersHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/users/read"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, tt.expectedMsg, body["message"])

			if tt.expectedCode != http.StatusOK {
				return
			}
			payload, ok := body["payload"].([]any)
			require.True(t, ok)
			assert.Len(t, payload, tt.expectedCnt)
			assert.NotContains(t, rr.Body.String(), "password")
			assert.NotContains(t, rr.Body.String(), "should-never-leak")
		})
	}
}
