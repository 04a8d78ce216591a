package middleware

import (
	"net/http"
	"strings"

	userRepo "barberly/database/repository/user"
	"barberly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware validates the bearer token and resolves the
// authenticated user. Token hashes are cached in Redis so revocation
// takes effect without hitting Mongo on every request.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash
		cache := utils.AuthCacheClient

		if cache != nil {
			if userID, err := cache.Get(c, cacheKey).Result(); err == nil && userID != "" {
				c.Set("userID", userID)
				c.Next()
				return
			}
		}

		// Cache miss: look the token hash up in the database.
		u, err := repo.GetByTokenHash(computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		if cache != nil {
			cache.Set(c, cacheKey, u.ID, utils.AuthCacheTTL)
		}
		c.Set("userID", u.ID)
		c.Next()
	}
}
