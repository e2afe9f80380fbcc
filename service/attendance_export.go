package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"Employee-Management-System/pkg/apperror"
)

const attendanceSheet = "Attendance"

var attendanceHeader = []interface{}{"#", "Type", "Timestamp", "Location"}

// ExportHistory renders History as an .xlsx workbook with one row per event.
// It returns the workbook and a suggested file name.
func (s *AttendanceService) ExportHistory(ctx context.Context, employeeID string) (*bytes.Buffer, string, error) {
	records, err := s.History(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, "", s.exportFailed(err)
	}
	f.SetColWidth(attendanceSheet, "A", "A", 6)
	f.SetColWidth(attendanceSheet, "B", "B", 12)
	f.SetColWidth(attendanceSheet, "C", "C", 28)
	f.SetColWidth(attendanceSheet, "D", "D", 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err := f.SetSheetRow(attendanceSheet, "A1", &attendanceHeader); err != nil {
		return nil, "", s.exportFailed(err)
	}
	f.SetCellStyle(attendanceSheet, "A1", "D1", headerStyle)

	for i, record := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{i + 1, string(record.Type), record.Timestamp.UTC().Format(time.RFC3339), record.Location}
		if err := f.SetSheetRow(attendanceSheet, cell, &row); err != nil {
			return nil, "", s.exportFailed(err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", s.exportFailed(err)
	}
	return buf, fmt.Sprintf("attendance_%s.xlsx", employeeID), nil
}

func (s *AttendanceService) exportFailed(err error) error {
	s.logger.Error("failed to build attendance workbook", zap.Error(err))
	return apperror.NewInternalError("Failed to export attendance records", err)
}
