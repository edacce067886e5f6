package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bearer issues a token for the given user against the test server's manager.
func bearer(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	tok, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthRequired(t *testing.T) {
	tests := []struct {
		name           string
		header         func(s *Server) string
		mockSetup      func(userRepo *MockUserRepository)
		expectedStatus int
		message        string
	}{
		{
			name:           "Missing header",
			header:         func(s *Server) string { return "" },
			mockSetup:      func(userRepo *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			message:        "Unauthorized access",
		},
		{
			name:           "Malformed header",
			header:         func(s *Server) string { return "Token abc" },
			mockSetup:      func(userRepo *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			message:        "Unauthorized access",
		},
		{
			name:           "Invalid token",
			header:         func(s *Server) string { return "Bearer not.a.token" },
			mockSetup:      func(userRepo *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
			message:        "Invalid token",
		},
		{
			name:   "Token for a deleted user",
			header: func(s *Server) string { return bearer(t, s, 9) },
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(9)).
					Return(nil, models.NewNotFoundError("User", 9))
			},
			expectedStatus: http.StatusUnauthorized,
			message:        "User not found",
		},
		{
			name:   "Valid token passes through",
			header: func(s *Server) string { return bearer(t, s, 9) },
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(9)).
					Return(&models.User{ID: 9, Name: "Jane", Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, app, userRepo, _, _ := newTestServer()
			tt.mockSetup(userRepo)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if h := tt.header(s); h != "" {
				req.Header.Set("Authorization", h)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeBody(t, resp)["message"])
			}
		})
	}
}
