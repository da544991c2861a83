package middleware

import (
	"net/http"
	"strings"

	"nexlot/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
	UserIDKey               = "userID"
	UserEmailKey            = "userEmail"
	UserTypeKey             = "userType"
)

type AuthMiddleware struct {
	authService *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate là middleware để xác thực JWT
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Thiếu authorization header"})
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Định dạng authorization header không hợp lệ"})
			return
		}

		claims, err := m.authService.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc đã hết hạn", "details": err.Error()})
			return
		}

		userID, okUserID := claims["sub"].(string)
		email, okEmail := claims["email"].(string)
		userType, okUserType := claims["user_type"].(string)
		if !okUserID || !okEmail || !okUserType {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Thông tin người dùng trong token không hợp lệ"})
			return
		}

		// Lưu thông tin người dùng vào context của Gin để các handler sau dùng
		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, email)
		c.Set(UserTypeKey, userType)

		c.Next()
	}
}

// AuthorizeUserType giới hạn route theo loại người dùng (vehicle_owner / space_owner)
func (m *AuthMiddleware) AuthorizeUserType(requiredTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeVal, exists := c.Get(UserTypeKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Không có quyền truy cập (thiếu loại người dùng)"})
			return
		}

		userType, ok := userTypeVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Không có quyền truy cập (loại người dùng không hợp lệ)"})
			return
		}

		for _, required := range requiredTypes {
			if userType == required {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Không có quyền truy cập (loại người dùng không phù hợp)"})
	}
}
