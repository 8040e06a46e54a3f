package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"programmers-api/internal/xsrf"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.Use(Session(), XSRF())
	r.GET("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

// establish does a GET to pick up the session and anti-forgery cookies.
func establish(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func cookieValue(cookies []*http.Cookie, name string) string {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func TestXSRFMiddleware_AllowsSafeMethods(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestXSRFMiddleware_RejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter()
	cookies := establish(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestXSRFMiddleware_AcceptsCookieToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter()
	cookies := establish(t, r)
	token := cookieValue(cookies, XSRFCookie)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodPost, "/api/ping", strings.NewReader(""))
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	req.Header.Set(XSRFHeader, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestXSRFMiddleware_RejectsForeignToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter()
	cookies := establish(t, r)

	// Valid signature, but minted for a different session
	foreign, err := xsrf.GenerateToken("someone-elses-session")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	req.Header.Set(XSRFHeader, foreign)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestXSRFMiddleware_RejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter()
	cookies := establish(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/ping", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	req.Header.Set(XSRFHeader, "not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}
