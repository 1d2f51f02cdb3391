package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/export"
)

// Snapshotter produces an employee export.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*export.Result, error)
}

// ExportEmployees uploads a snapshot of all employees and returns its download link.
//
// @Summary Export employees to object storage
// @Produce json
// @Success 200 {object} export.Result
// @Router /employees/export [post]
func ExportEmployees(exp Snapshotter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := exp.Snapshot(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
