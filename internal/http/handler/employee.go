package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/model"
	"employeeapi/internal/service"
)

// CreateEmployee stores a new employee.
//
// @Summary Create employee
// @Accept json
// @Produce json
// @Param employee body model.Employee true "Employee (id ignored)"
// @Success 200 {object} model.Employee
// @Router /employees [post]
func CreateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Employee
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		e, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// ListEmployees returns every employee.
//
// @Summary List employees
// @Produce json
// @Success 200 {array} model.Employee
// @Router /employees [get]
func ListEmployees(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetEmployee returns one employee.
//
// @Summary Get employee
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Employee
// @Failure 404 {string} string "Employee not found with id: {id}"
// @Router /employees/{id} [get]
func GetEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		e, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// UpdateEmployee overwrites name, email and role of an employee.
//
// @Summary Update employee
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body model.Employee true "New field values"
// @Success 200 {object} model.Employee
// @Failure 404 {string} string "Employee not found with id: {id}"
// @Router /employees/{id} [put]
func UpdateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.Employee
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		e, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(e)
	}
}

// DeleteEmployee removes an employee and answers 200 with an empty body.
//
// @Summary Delete employee
// @Param id path int true "Employee ID"
// @Success 200
// @Failure 404 {string} string "Employee not found with id: {id}"
// @Router /employees/{id} [delete]
func DeleteEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).Send(nil)
	}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

// writeServiceError answers NotFound with a plain-text 404 carrying its message
// and hides every other error behind a generic 500 envelope.
func writeServiceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).SendString(nf.Error())
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
