// file: middlewares/auth.go
package middlewares

import (
	"strings"

	"FlagCore/database"
	"FlagCore/models"
	"FlagCore/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware requires a valid session token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			// An emailed link may authenticate via ?token= instead.
			if user, ok := linkTokenUser(c); ok {
				c.Set("uid", user.UID)
				c.Set("user_role", user.Role)
				c.Next()
				return
			}
			utils.Error(c, 4001, "Missing Authorization header")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4003, "Invalid token")
			c.Abort()
			return
		}
		c.Set("uid", claims.UID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// linkTokenUser resolves a signed-URL token into the user it binds.
// The role is looked up fresh since link tokens carry only an identity.
func linkTokenUser(c *gin.Context) (*models.User, bool) {
	token := c.Query("token")
	if token == "" {
		return nil, false
	}
	uid, err := utils.VerifyLinkToken(token)
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := database.DB.First(&user, "uid = ?", uid).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// RoleAuthMiddleware restricts a route to the given roles.
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, 5001, "Missing role information")
			c.Abort()
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			utils.Forbidden(c, "Insufficient permissions")
			return
		}
		c.Next()
	}
}
