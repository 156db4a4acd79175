package routes

import (
	"bytes"
	"encoding/json"
	"gin-bomtracker/infra"
	"gin-bomtracker/repositories"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := infra.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &infra.Config{
		Port:    "0",
		Env:     "test",
		Version: "test",
		Auth: infra.AuthConfig{
			SecretKey: "test-secret-key",
			TokenTTL:  time.Hour,
		},
	}
	return &testAPI{t: t, router: SetupRouter(db, repositories.NewTokenRepository(db), cfg)}
}

func (a *testAPI) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(a.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testAPI) setupAdmin(username, password string) string {
	a.t.Helper()

	rr := a.do(http.MethodPost, "/api/v1/auth/setup", map[string]interface{}{
		"auth_enabled":   true,
		"admin_username": username,
		"admin_password": password,
	}, "")
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())

	return a.login(username, password)
}

func (a *testAPI) login(username, password string) string {
	a.t.Helper()

	rr := a.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())

	token, ok := decodeObject(a.t, rr)["access_token"].(string)
	require.True(a.t, ok)
	return token
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func idOf(t *testing.T, obj map[string]interface{}) int {
	t.Helper()
	id, ok := obj["id"].(float64)
	require.True(t, ok, "id missing in %v", obj)
	return int(id)
}
