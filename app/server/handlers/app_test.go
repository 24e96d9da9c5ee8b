package handlers_test

import (
	"bytes"
	"class-website/app/server/assets"
	"class-website/app/server/config"
	"class-website/app/server/handlers"
	"class-website/app/server/inits"
	"class-website/app/server/jwt"
	"class-website/app/server/middlewares"
	"class-website/app/server/revocation"
	"class-website/app/server/store"
	"class-website/app/server/store/dbstore"
	"class-website/app/server/store/filestore"
	"class-website/app/server/types"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret   = "test-signature-key"
	testUsername = "admin"
	testPassword = "correct horse battery staple"
)

type testServer struct {
	e         *echo.Echo
	st        store.Store
	jwt       *jwt.JWT
	uploadDir string
	token     string
}

type backend struct {
	name string
	new  func(t *testing.T) store.Store
}

var backends = []backend{
	{
		name: "file",
		new: func(t *testing.T) store.Store {
			st, err := filestore.New(t.TempDir(), zap.NewNop())
			require.NoError(t, err)
			return st
		},
	},
	{
		name: "sqlite",
		new: func(t *testing.T) store.Store {
			db, err := inits.DB(config.DBDriverSQLite, filepath.Join(t.TempDir(), "site.db")+"?_busy_timeout=5000", false, zap.NewNop())
			require.NoError(t, err)
			st := dbstore.New(db, zap.NewNop())
			t.Cleanup(func() { _ = st.Close() })
			return st
		},
	},
}

// eachBackend 对每种存储后端执行一次
func eachBackend(t *testing.T, fn func(t *testing.T, ts *testServer)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			fn(t, newTestServer(t, b.new(t), revocation.Noop{}))
		})
	}
}

func newTestServer(t *testing.T, st store.Store, revoked revocation.List) *testServer {
	t.Helper()
	l := zap.NewNop()

	require.NoError(t, inits.Seed(context.Background(), st, testUsername, testPassword, l))

	j, err := jwt.New(testSecret)
	require.NoError(t, err)

	uploadDir := t.TempDir()
	disk, err := assets.NewDisk(uploadDir)
	require.NoError(t, err)

	app := handlers.NewApp(l, st, j, revoked, assets.NewManager(disk, l))

	e := echo.New()
	e.HTTPErrorHandler = app.HTTPErrorHandler
	app.Register(e, middlewares.AdminAuth(j, revoked, l))

	ts := &testServer{e: e, st: st, jwt: j, uploadDir: uploadDir}

	var login types.LoginResponse
	rec := ts.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"username": testUsername,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decode(t, rec, &login)
	ts.token = login.Token

	return ts
}

// do 发送 JSON 请求， body 为 nil 时不带请求体
func (ts *testServer) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

type uploadFile struct {
	name        string
	contentType string
	body        []byte
}

func (ts *testServer) upload(t *testing.T, files ...uploadFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(f.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token)

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg types.ErrorMessage
	decode(t, rec, &msg)
	return msg.Error
}
