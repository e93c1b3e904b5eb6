package middleware

import (
	"context"
	"net/http"
	"strings"

	"smarthome/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier verifies Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuth requires a valid "Authorization: Bearer <idToken>" header and stores the
// token's email under utils.DecodedEmailKey.
func FirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			zap.L().Debug("ID token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, _ := token.Claims["email"].(string)
		c.Set(utils.DecodedEmailKey, email)
		c.Next()
	}
}
