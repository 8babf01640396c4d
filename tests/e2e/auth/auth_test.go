//go:build e2e

package auth_test

import (
	"context"
	"net/http"
	"testing"

	"linenhire/internal/handler/dto/request"
	"linenhire/internal/handler/dto/response"
	"linenhire/internal/pkg/cookie"
	"linenhire/tests/common/authtest"
	"linenhire/tests/common/dbtest"
	"linenhire/tests/common/httptest"
	"linenhire/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestAdmin(s.T(), s.DB, "staff@example.com")
	dbtest.CreateTestAdmin(s.T(), s.DB, "inactive@example.com")

	ctx := context.Background()
	_, err := s.DB.Exec(ctx, "UPDATE admin_users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Valid credentials log in",
			email:          "staff@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown email is rejected",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong password is rejected",
			email:          "staff@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Deactivated account cannot log in",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Empty email fails validation",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty password fails validation",
			email:          "staff@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var resp response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
				require.NotEmpty(t, resp.UserID)

				c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, c, "session cookie missing")
				require.True(t, c.HttpOnly)
				require.NotEmpty(t, c.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Returns the logged-in account", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "staff@example.com", me.Email)
		require.Equal(t, "admin", me.Role)
		require.True(t, me.IsActive)
		require.NotNil(t, me.LastLogin, "login must record last_login")
	})

	s.Run("Rejects requests without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Rejects a garbage token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Clears the session cookie", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		require.Empty(t, c.Value)
		require.True(t, c.MaxAge < 0, "cookie must be expired")
	})
}
