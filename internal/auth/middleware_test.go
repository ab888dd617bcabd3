package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apihttp "github.com/spec-kit/atelier-service/internal/api/http"
	"github.com/spec-kit/atelier-service/internal/auth"
	"github.com/spec-kit/atelier-service/internal/domain"
	"github.com/spec-kit/atelier-service/internal/observability"
)

const middlewareSecret = "middleware-test-secret"

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	tokens := auth.NewTokenManager(middlewareSecret, time.Hour, auth.NewMemoryRevocationList())
	metrics := observability.NewMetrics()
	middleware := auth.NewAuthMiddleware(tokens, zap.NewNop(), metrics)

	app := fiber.New()
	apihttp.RegisterMiddlewares(app, zap.NewNop(), metrics, 0)

	protected := app.Group("", middleware.Handle)
	protected.Get("/me", func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"data": fiber.Map{
			"user_id": principal.UserID,
			"role":    principal.Role,
		}})
	})
	protected.Get("/admin", auth.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "ok"})
	})
	return app, tokens
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, errorBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body errorBody
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "/me", "")
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "UNAUTHORIZED", body.Error.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doRequest(t, app, "/me", "Token abc")
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doRequest(t, app, "/me", "Bearer not.a.token")
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "invalid token", body.Error.Message)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app, _ := newTestApp(t)

	claims := &auth.Claims{
		UserID: "user-1",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(middlewareSecret))
	require.NoError(t, err)

	status, body := doRequest(t, app, "/me", "Bearer "+expired)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "token expired", body.Error.Message)
}

func TestAuthMiddlewareRevokedToken(t *testing.T) {
	app, tokens := newTestApp(t)

	token, _, err := tokens.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(context.Background(), token))

	// A revoked token is rejected identically to a malformed one.
	status, body := doRequest(t, app, "/me", "Bearer "+token)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "invalid token", body.Error.Message)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app, tokens := newTestApp(t)

	token, _, err := tokens.Issue("user-7", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			UserID string `json:"user_id"`
			Role   string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "user-7", body.Data.UserID)
	require.Equal(t, string(domain.RoleAdmin), body.Data.Role)
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	app, tokens := newTestApp(t)

	token, _, err := tokens.Issue("user-1", domain.RoleUser)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/admin", "Bearer "+token)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "FORBIDDEN", body.Error.Code)
	require.Equal(t, "insufficient role", body.Error.Message)
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	app, tokens := newTestApp(t)

	token, _, err := tokens.Issue("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "/admin", "Bearer "+token)
	require.Equal(t, http.StatusOK, status)
}
