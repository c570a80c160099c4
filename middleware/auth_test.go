package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matryer/is"
)

func newAuthedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AccountID())
	r.GET("/whoami", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, Account(ctx))
	})
	return r
}

func TestAccountIDForwarded(t *testing.T) {
	is := is.New(t)
	r := newAuthedRouter()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AccountHeader, "acc-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), "acc-1")
}

func TestAccountIDMissing(t *testing.T) {
	is := is.New(t)
	r := newAuthedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	is.Equal(w.Code, http.StatusUnauthorized)

	// Whitespace is not an account id.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(AccountHeader, "   ")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	is.Equal(w.Code, http.StatusUnauthorized)
}
