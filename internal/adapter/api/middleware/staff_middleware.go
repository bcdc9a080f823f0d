package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nekta161/autosalon/internal/domain/repository"
)

type StaffMiddleware struct {
	userRepo repository.UserRepository
}

func NewStaffMiddleware(userRepo repository.UserRepository) *StaffMiddleware {
	return &StaffMiddleware{
		userRepo: userRepo,
	}
}

func (m *StaffMiddleware) StaffOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify staff privileges")
		}

		if !user.IsStaff() {
			return echo.NewHTTPError(http.StatusForbidden, "Staff privileges required")
		}

		return next(c)
	}
}
