package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is shared with the identity service that sets it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
