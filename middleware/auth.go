package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AccountHeader carries the account id resolved by the session layer
// sitting in front of the API. The core knows nothing about cookies or
// tokens; it trusts this header the way the deployment's reverse proxy
// or session middleware installs it.
const AccountHeader = "X-Account-Id"

// ContextAccountKey is where AccountID stashes the account id in the gin
// context.
const ContextAccountKey = "account_id"

// AccountID requires a forwarded account id on the route and makes it
// available to the handlers.
func AccountID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accountID := strings.TrimSpace(ctx.GetHeader(AccountHeader))
		if accountID == "" {
			logrus.Debugf("%s %s: no account id forwarded by the auth layer",
				ctx.Request.Method, ctx.Request.URL.Path)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required.",
			})
			return
		}
		ctx.Set(ContextAccountKey, accountID)
	}
}

// Account reads the account id AccountID stored on the context.
func Account(ctx *gin.Context) string {
	return ctx.GetString(ContextAccountKey)
}
