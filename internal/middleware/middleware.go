package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"restaurant-reviews/internal/access"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	tokenString := parts[1]
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// ClaimsFromContext 取出 RequireAuth 放入 context 的 claims，不存在時回傳 nil
func ClaimsFromContext(c echo.Context) *service.CustomClaims {
	claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// CallerFromContext 將 claims 轉成授權評估器使用的呼叫者身分，
// 未認證的請求回傳 nil
func CallerFromContext(c echo.Context) *access.Caller {
	claims := ClaimsFromContext(c)
	if claims == nil {
		return nil
	}
	return &access.Caller{ID: claims.UserID, Role: claims.Role}
}

func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims := c.Get(ContextUserKey).(*service.CustomClaims)
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	})
}
