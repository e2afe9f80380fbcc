package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Management-System/models"
)

type DepartmentServiceAPI interface {
	Create(ctx context.Context, payload models.DepartmentPayload) (*models.Department, error)
	List(ctx context.Context) ([]models.Department, error)
	Get(ctx context.Context, id string) (*models.Department, error)
	Update(ctx context.Context, id string, payload models.DepartmentPayload) (*models.Department, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentHandler struct {
	service DepartmentServiceAPI
	timeout time.Duration
}

func NewDepartmentHandler(service DepartmentServiceAPI, timeout time.Duration) *DepartmentHandler {
	return &DepartmentHandler{service: service, timeout: timeout}
}

// CreateDepartment godoc
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Param department body models.DepartmentPayload true "Department name"
// @Success 201 {object} models.Department
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentPayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	department, err := h.service.Create(ctx, payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

// GetAllDepartments godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} models.ErrorResponse
// @Router /departments [get]
func (h *DepartmentHandler) GetAllDepartments(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	departments, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(departments)
}

// GetDepartmentByID godoc
// @Summary Get department
// @Tags Departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} models.Department
// @Failure 404 {object} models.ErrorResponse
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartmentByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	department, err := h.service.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(department)
}

// UpdateDepartment godoc
// @Summary Rename department
// @Tags Departments
// @Accept json
// @Produce json
// @Param id path string true "Department ID"
// @Param department body models.DepartmentPayload true "New name"
// @Success 200 {object} models.Department
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	var payload models.DepartmentPayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	department, err := h.service.Update(ctx, c.Params("id"), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(department)
}

// DeleteDepartment godoc
// @Summary Delete department
// @Description Removes the department. Positions and employees referring to it are not touched.
// @Tags Departments
// @Param id path string true "Department ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.service.Delete(ctx, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
