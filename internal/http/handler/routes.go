package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The export route is only registered when exp is non-nil.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.EmployeeService, exp Snapshotter) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/employees", CreateEmployee(svc))
	app.Get("/employees", ListEmployees(svc))
	if exp != nil {
		app.Post("/employees/export", ExportEmployees(exp))
	}
	app.Get("/employees/:id", GetEmployee(svc))
	app.Put("/employees/:id", UpdateEmployee(svc))
	app.Delete("/employees/:id", DeleteEmployee(svc))
}
