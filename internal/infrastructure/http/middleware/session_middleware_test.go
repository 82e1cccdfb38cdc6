package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

func runSession(t *testing.T, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	t.Helper()
	cfg := &config.SessionConfig{CookieName: "workspace_session", TTL: time.Hour}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := EchoSession(cfg)(func(c echo.Context) error {
		id, ok := GetSessionID(c)
		require.True(t, ok)
		got = id
		return nil
	})
	require.NoError(t, h(c))
	return got, rec
}

func TestEchoSession_NewSession(t *testing.T) {
	id, rec := runSession(t, nil)

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "workspace_session", cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestEchoSession_ReusesCookie(t *testing.T) {
	existing := uuid.NewString()

	id, _ := runSession(t, &http.Cookie{Name: "workspace_session", Value: existing})

	assert.Equal(t, existing, id)
}

func TestEchoSession_ReplacesMalformedCookie(t *testing.T) {
	id, _ := runSession(t, &http.Cookie{Name: "workspace_session", Value: "../../etc"})

	assert.NotEqual(t, "../../etc", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
