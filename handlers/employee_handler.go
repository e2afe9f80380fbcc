package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Management-System/models"
	"Employee-Management-System/service"
)

type EmployeeServiceAPI interface {
	Create(ctx context.Context, payload models.EmployeeCreatePayload) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Update(ctx context.Context, id string, payload models.EmployeeUpdatePayload) (*models.Employee, error)
	Delete(ctx context.Context, id string) error
	Badge(ctx context.Context, id string, size int) ([]byte, error)
}

type EmployeeHandler struct {
	service EmployeeServiceAPI
	timeout time.Duration
}

func NewEmployeeHandler(service EmployeeServiceAPI, timeout time.Duration) *EmployeeHandler {
	return &EmployeeHandler{service: service, timeout: timeout}
}

// CreateEmployee godoc
// @Summary Hire employee
// @Description Creates an active employee with a generated EMP-<millis> id. hireDate defaults to now.
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeeCreatePayload true "Employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "An active employee already uses this email"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	employee, err := h.service.Create(ctx, payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetAllEmployees godoc
// @Summary List employees
// @Description Inactive (deleted) employees are included.
// @Tags Employees
// @Produce json
// @Success 200 {array} models.Employee
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	employees, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(employees)
}

// GetEmployeeByID godoc
// @Summary Get employee
// @Tags Employees
// @Produce json
// @Param id path string true "Employee document ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	employee, err := h.service.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(employee)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee document ID"
// @Param employee body models.EmployeeUpdatePayload true "Fields to change"
// @Success 200 {object} models.Employee
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeUpdatePayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	employee, err := h.service.Update(ctx, c.Params("id"), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(employee)
}

// DeleteEmployee godoc
// @Summary Deactivate employee
// @Description Soft delete: the record stays and isActive becomes false.
// @Tags Employees
// @Param id path string true "Employee document ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.service.Delete(ctx, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetEmployeeBadge godoc
// @Summary Employee QR badge
// @Description PNG QR code encoding the employeeId, for attendance kiosks.
// @Tags Employees
// @Produce png
// @Param id path string true "Employee document ID"
// @Param size query int false "Image size in pixels (128-1024)" default(256)
// @Success 200 {file} binary
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employees/{id}/badge [get]
func (h *EmployeeHandler) GetEmployeeBadge(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	png, err := h.service.Badge(ctx, c.Params("id"), c.QueryInt("size", service.DefaultBadgeSize))
	if err != nil {
		return err
	}
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}
