package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Management-System/models"
)

type PositionServiceAPI interface {
	Create(ctx context.Context, payload models.PositionCreatePayload) (*models.Position, error)
	List(ctx context.Context) ([]models.Position, error)
	Get(ctx context.Context, id string) (*models.Position, error)
	Update(ctx context.Context, id string, patch models.PositionPatch) (*models.Position, error)
	Delete(ctx context.Context, id string) error
}

type PositionHandler struct {
	service PositionServiceAPI
	timeout time.Duration
}

func NewPositionHandler(service PositionServiceAPI, timeout time.Duration) *PositionHandler {
	return &PositionHandler{service: service, timeout: timeout}
}

// CreatePosition godoc
// @Summary Create position
// @Tags Positions
// @Accept json
// @Produce json
// @Param position body models.PositionCreatePayload true "Position"
// @Success 201 {object} models.Position
// @Failure 400 {object} models.ErrorResponse
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *fiber.Ctx) error {
	var payload models.PositionCreatePayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	position, err := h.service.Create(ctx, payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(position)
}

// GetAllPositions godoc
// @Summary List positions
// @Tags Positions
// @Produce json
// @Success 200 {array} models.Position
// @Router /positions [get]
func (h *PositionHandler) GetAllPositions(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	positions, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(positions)
}

// GetPositionByID godoc
// @Summary Get position
// @Tags Positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} models.Position
// @Failure 404 {object} models.ErrorResponse
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPositionByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	position, err := h.service.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(position)
}

// UpdatePosition godoc
// @Summary Update position
// @Description Applies title and/or departmentId. At least one must be non-blank.
// @Tags Positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param position body models.PositionPatch true "Fields to change"
// @Success 200 {object} models.Position
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *fiber.Ctx) error {
	var patch models.PositionPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	position, err := h.service.Update(ctx, c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(position)
}

// DeletePosition godoc
// @Summary Delete position
// @Tags Positions
// @Param id path string true "Position ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	if err := h.service.Delete(ctx, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
