package middleware

import (
	"context"

	"github.com/bengkelku/workshop_management_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// authUserKey is the key used to store the resolved account in the request
// context.
const authUserKey = contextKey("authUser")

// GetAuthUserFromCtx retrieves the resolved account from a standard context.
func GetAuthUserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(authUserKey).(*domain.User)
	return user, ok
}

// GetAuthUser retrieves the resolved account from the Gin request context.
// The account's WorkshopID is the tenant scope for everything the handler does.
func GetAuthUser(c *gin.Context) (*domain.User, bool) {
	return GetAuthUserFromCtx(c.Request.Context())
}
