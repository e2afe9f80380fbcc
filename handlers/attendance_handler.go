package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Employee-Management-System/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceServiceAPI interface {
	RecordEvent(ctx context.Context, payload models.AttendanceEventPayload, eventType models.AttendanceType) (*models.AttendanceEventResponse, error)
	History(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error)
	Status(ctx context.Context, employeeID string) (*models.AttendanceStatus, error)
	ExportHistory(ctx context.Context, employeeID string) (*bytes.Buffer, string, error)
}

type AttendanceHandler struct {
	service AttendanceServiceAPI
	timeout time.Duration
}

func NewAttendanceHandler(service AttendanceServiceAPI, timeout time.Duration) *AttendanceHandler {
	return &AttendanceHandler{service: service, timeout: timeout}
}

// TimeIn godoc
// @Summary Record time-in
// @Tags Attendance
// @Accept json
// @Produce json
// @Param event body models.AttendanceEventPayload true "Business employee id"
// @Success 201 {object} models.AttendanceEventResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/time-in [post]
func (h *AttendanceHandler) TimeIn(c *fiber.Ctx) error {
	return h.record(c, models.AttendanceTimeIn)
}

// TimeOut godoc
// @Summary Record time-out
// @Tags Attendance
// @Accept json
// @Produce json
// @Param event body models.AttendanceEventPayload true "Business employee id"
// @Success 201 {object} models.AttendanceEventResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/time-out [post]
func (h *AttendanceHandler) TimeOut(c *fiber.Ctx) error {
	return h.record(c, models.AttendanceTimeOut)
}

func (h *AttendanceHandler) record(c *fiber.Ctx, eventType models.AttendanceType) error {
	var payload models.AttendanceEventPayload
	if err := parseBody(c, &payload); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	resp, err := h.service.RecordEvent(ctx, payload, eventType)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetAttendanceRecords godoc
// @Summary Attendance history
// @Description Every event of the employee, oldest first.
// @Tags Attendance
// @Produce json
// @Param employeeId path string true "Business employee id (EMP-...)"
// @Success 200 {array} models.AttendanceRecord
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/{employeeId}/records [get]
func (h *AttendanceHandler) GetAttendanceRecords(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	records, err := h.service.History(ctx, c.Params("employeeId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// GetAttendanceStatus godoc
// @Summary Current clock state
// @Description IN after a time-in, OUT after a time-out, NONE with no events.
// @Tags Attendance
// @Produce json
// @Param employeeId path string true "Business employee id (EMP-...)"
// @Success 200 {object} models.AttendanceStatus
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/{employeeId}/status [get]
func (h *AttendanceHandler) GetAttendanceStatus(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	status, err := h.service.Status(ctx, c.Params("employeeId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(status)
}

// ExportAttendanceRecords godoc
// @Summary Export attendance history
// @Tags Attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param employeeId path string true "Business employee id (EMP-...)"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/{employeeId}/records/export [get]
func (h *AttendanceHandler) ExportAttendanceRecords(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	buf, filename, err := h.service.ExportHistory(ctx, c.Params("employeeId"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
