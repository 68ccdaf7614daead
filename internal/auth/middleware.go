package auth

import (
	"errors"
	"net/http"
	"strings"

	"business-platform-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Context keys set by the middleware
const (
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextTenantID = "tenant_id"
)

// TenantHeader carries the tenant the request operates on
const TenantHeader = "X-Tenant-ID"

// AuthMiddleware provides JWT authentication and tenant resolution middleware
type AuthMiddleware struct {
	service        *AuthService
	membershipRepo repository.UserTenantRepositoryInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, membershipRepo repository.UserTenantRepositoryInterface) *AuthMiddleware {
	return &AuthMiddleware{service: service, membershipRepo: membershipRepo}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid token subject"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, claims.Email)

		c.Next()
	}
}

// RequireTenant resolves the tenant from the X-Tenant-ID header and verifies
// the authenticated user holds a membership in it. Must run after RequireAuth.
func (m *AuthMiddleware) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(TenantHeader)
		if header == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
			c.Abort()
			return
		}

		tenantID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid tenant id"})
			c.Abort()
			return
		}

		userID, ok := UserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		if _, err := m.membershipRepo.GetByTenantAndUser(tenantID, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "No membership in this tenant"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resolve tenant"})
			}
			c.Abort()
			return
		}

		c.Set(ContextTenantID, tenantID)
		c.Next()
	}
}

// UserIDFromContext extracts the authenticated user's id from the gin context
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// TenantIDFromContext extracts the resolved tenant id from the gin context
func TenantIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextTenantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
