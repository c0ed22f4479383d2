package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/db_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const (
	// CurrentUserKey holds the resolved *db_models.User for the request.
	CurrentUserKey = "current_user"
)

// JWTAuthMiddleware validates the bearer token and resolves the subject to a
// live user row. Every failure is a uniform 401.
func JWTAuthMiddleware(tokens *utils.TokenMaker, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := userRepo.FindBy(c.Request.Context(), repositories.UserByUsername, claims.Subject)
		if err != nil || user == nil {
			abortUnauthorized(c)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
	c.Abort()
}

// CurrentUser returns the user resolved by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) (*db_models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*db_models.User)
	return user, ok
}
