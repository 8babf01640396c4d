//go:build e2e

package authtest

import (
	"net/http"
	"testing"

	"linenhire/internal/handler/dto/request"
	"linenhire/internal/pkg/cookie"
	"linenhire/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser authenticates through the real login endpoint and returns the
// access token taken from the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "access token cookie not set")
	require.NotEmpty(t, c.Value, "access token cookie is empty")

	return c.Value
}
