package middleware

import (
	"net/http"
	"strings"

	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/internal/domain"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/jobmanagement/job-service/pkg/response"
	"github.com/jobmanagement/job-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

const (
	callerIDKey   = "callerID"
	callerRoleKey = "callerRole"
)

// Authenticate validates the Authorization bearer token and stashes the
// caller's identity on the echo context for downstream handlers.
func Authenticate(conf config.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return writeAuthError(c)
			}

			claims, err := utils.ParseJWTToken(token, conf)
			if err != nil {
				return writeAuthError(c)
			}

			c.Set(callerIDKey, claims.UserID)
			c.Set(callerRoleKey, domain.Role(claims.Role))

			return next(c)
		}
	}
}

// RequireRoles rejects callers whose token role is not in the allow list.
// Must run after Authenticate.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRole := CallerRole(c)
			for _, role := range roles {
				if callerRole == role {
					return next(c)
				}
			}

			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		}
	}
}

func CallerID(c echo.Context) int64 {
	id, _ := c.Get(callerIDKey).(int64)
	return id
}

func CallerRole(c echo.Context) domain.Role {
	role, _ := c.Get(callerRoleKey).(domain.Role)
	return role
}

func writeAuthError(c echo.Context) error {
	errorResponse := map[string]interface{}{
		"status":  "error",
		"message": "Invalid or expired JWT",
		"errors":  nil,
	}
	return c.JSON(http.StatusUnauthorized, errorResponse)
}
