package handlers_test

import (
	"class-website/app/server/constants"
	"class-website/app/server/jwt"
	"class-website/app/server/revocation"
	"class-website/app/server/types"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": testUsername,
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var res types.LoginResponse
		decode(t, rec, &res)
		assert.Equal(t, "Login successful", res.Message)
		assert.NotEmpty(t, res.Token)
		assert.NotEmpty(t, res.User.ID)
		assert.Equal(t, testUsername, res.User.Username)
		assert.Equal(t, constants.RoleAdmin, res.User.Role)
		assert.NotContains(t, rec.Body.String(), "passwordHash")

		user, err := ts.jwt.ParseUser(res.Token)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), user.Expires, time.Minute)
	})
}

func TestLoginRejected(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		tests := []struct {
			name    string
			body    map[string]string
			status  int
			message string
		}{
			{"wrong password", map[string]string{"username": testUsername, "password": "nope"}, http.StatusUnauthorized, "Invalid credentials"},
			{"unknown user", map[string]string{"username": "ghost", "password": testPassword}, http.StatusUnauthorized, "Invalid credentials"},
			{"missing password", map[string]string{"username": testUsername}, http.StatusBadRequest, "Username and password are required"},
			{"empty body", map[string]string{}, http.StatusBadRequest, "Username and password are required"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := ts.do(t, http.MethodPost, "/api/login", "", tt.body)
				assert.Equal(t, tt.status, rec.Code)
				assert.Equal(t, tt.message, errorMessage(t, rec))
			})
		}
	})
}

func TestProtectedRoutes(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		expired, err := ts.jwt.SignToken(&jwt.User{
			ID:       "1",
			Username: testUsername,
			Role:     constants.RoleAdmin,
			Expires:  time.Now().Add(-time.Minute),
		})
		require.NoError(t, err)

		other, err := jwt.New("another-key")
		require.NoError(t, err)
		forged, err := other.SignToken(&jwt.User{
			ID:       "1",
			Username: testUsername,
			Role:     constants.RoleAdmin,
			Expires:  time.Now().Add(time.Hour),
		})
		require.NoError(t, err)

		routes := []struct {
			method string
			target string
		}{
			{http.MethodDelete, "/api/confessions/unknown"},
			{http.MethodPut, "/api/gallery/unknown"},
			{http.MethodDelete, "/api/gallery/unknown"},
			{http.MethodPut, "/api/structure/unknown"},
			{http.MethodDelete, "/api/structure/unknown"},
		}

		for _, r := range routes {
			t.Run(r.method+" "+r.target, func(t *testing.T) {
				rec := ts.do(t, r.method, r.target, "", nil)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Equal(t, "Unauthorized: No token provided", errorMessage(t, rec))

				for _, bad := range []string{"garbage", expired, forged} {
					rec = ts.do(t, r.method, r.target, bad, nil)
					assert.Equal(t, http.StatusForbidden, rec.Code)
					assert.Equal(t, "Unauthorized: Invalid token", errorMessage(t, rec))
				}

				rec = ts.do(t, r.method, r.target, ts.token, map[string]string{})
				assert.Equal(t, http.StatusNotFound, rec.Code)
			})
		}

		// 非 Bearer 的认证方式等同于没有令牌
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic "+ts.token)
		rec := httptest.NewRecorder()
		ts.e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.do(t, http.MethodGet, "/api/me", ts.token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me types.UserInfo
		decode(t, rec, &me)
		assert.Equal(t, testUsername, me.Username)
		assert.Equal(t, constants.RoleAdmin, me.Role)
	})
}

func TestLogoutRevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ts := newTestServer(t, backends[0].new(t), revocation.NewRedis(rdb))

	rec := ts.do(t, http.MethodGet, "/api/me", ts.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/logout", ts.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/me", ts.token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized: Invalid token", errorMessage(t, rec))
}

func TestLogoutWithoutRedis(t *testing.T) {
	ts := newTestServer(t, backends[0].new(t), revocation.Noop{})

	rec := ts.do(t, http.MethodPost, "/api/logout", ts.token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// 没有吊销列表，令牌在过期前依然有效
	rec = ts.do(t, http.MethodGet, "/api/me", ts.token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
