package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	professionalRepo "agendapro/database/repository/professional"
	"agendapro/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const authCachePrefix = "verifiedToken:"
const authCacheTTL = 10 * time.Minute

// JWTAuthMiddleware verifies the bearer token and resolves the professional
// it belongs to. Verified tokens are cached (hashed) in Redis so repeat
// requests skip the signature check and the account lookup; a verification
// failure drops the cache entry.
func JWTAuthMiddleware(cache *redis.Client, profRepo professionalRepo.ProfessionalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		cacheKey := authCachePrefix + utils.HashToken(tokenString)
		if cachedID, err := cache.Get(ctx, cacheKey).Result(); err == nil && cachedID != "" {
			c.Set("professionalID", cachedID)
			c.Next()
			return
		}

		professionalID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			_ = cache.Del(ctx, cacheKey).Err()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// Confirm the account still exists before trusting the subject.
		if _, err := profRepo.GetByID(ctx, professionalID); err != nil {
			_ = cache.Del(ctx, cacheKey).Err()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
			return
		}

		if err := cache.Set(ctx, cacheKey, professionalID, authCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache verified token")
		}

		c.Set("professionalID", professionalID)
		c.Next()
	}
}
