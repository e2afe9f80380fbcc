package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
	util "Employee-Management-System/pkg/utils"
	"Employee-Management-System/repository/memory"
	"Employee-Management-System/service"
)

var _ = Describe("AttendanceService", func() {
	var (
		ctx       context.Context
		store     *memory.Store
		employees *service.EmployeeService
		svc       *service.AttendanceService
		emp       *models.Employee
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = memory.NewStore()
		employees = service.NewEmployeeService(store, util.NewEmployeeIDGenerator(), zap.NewNop())
		svc = service.NewAttendanceService(store, store, zap.NewNop())

		var err error
		emp, err = employees.Create(ctx, hirePayload("juan@example.com"))
		Expect(err).NotTo(HaveOccurred())
	})

	event := func(employeeID string) models.AttendanceEventPayload {
		return models.AttendanceEventPayload{EmployeeID: employeeID}
	}

	Describe("FindEmployeeByBusinessID", func() {
		It("finds by employeeId", func() {
			found, err := svc.FindEmployeeByBusinessID(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(emp.ID))
		})

		It("returns nil without error for an unknown id", func() {
			found, err := svc.FindEmployeeByBusinessID(ctx, "EMP-0")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("RecordEvent", func() {
		It("appends a record at the office location", func() {
			resp, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeIn)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Message).To(Equal("Employee " + emp.EmployeeID + " successfully recorded time-in."))
			Expect(resp.Record.Type).To(Equal(models.AttendanceTimeIn))
			Expect(resp.Record.Location).To(Equal("BGC, Taguig City Office"))
			Expect(resp.Record.Timestamp.IsZero()).To(BeFalse())
			Expect(resp.Record.ID.IsZero()).To(BeFalse())
		})

		It("requires an employeeId", func() {
			_, err := svc.RecordEvent(ctx, event("  "), models.AttendanceTimeIn)
			appErr := expectAppError(err, apperror.ErrorTypeValidation)
			Expect(appErr.Message).To(Equal("employeeId is required in the request body."))
			Expect(store.AttendanceCount()).To(Equal(0))
		})

		It("reports NotFound for an unknown employee and writes nothing", func() {
			_, err := svc.RecordEvent(ctx, event("EMP-0"), models.AttendanceTimeOut)
			expectAppError(err, apperror.ErrorTypeNotFound)
			Expect(store.AttendanceCount()).To(Equal(0))
		})

		It("does not enforce alternation", func() {
			for i := 0; i < 2; i++ {
				_, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeIn)
				Expect(err).NotTo(HaveOccurred())
			}
			records, err := svc.History(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("still accepts events for a deactivated employee", func() {
			Expect(employees.Delete(ctx, emp.ID.Hex())).To(Succeed())
			_, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeOut)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("History", func() {
		It("lists records oldest first", func() {
			for _, t := range []models.AttendanceType{models.AttendanceTimeIn, models.AttendanceTimeOut, models.AttendanceTimeIn} {
				_, err := svc.RecordEvent(ctx, event(emp.EmployeeID), t)
				Expect(err).NotTo(HaveOccurred())
			}

			records, err := svc.History(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(3))
			Expect(records[0].Type).To(Equal(models.AttendanceTimeIn))
			Expect(records[1].Type).To(Equal(models.AttendanceTimeOut))
			for i := 1; i < len(records); i++ {
				Expect(records[i].Timestamp.Before(records[i-1].Timestamp)).To(BeFalse())
			}
		})

		It("returns an empty list for an employee without events", func() {
			records, err := svc.History(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).NotTo(BeNil())
			Expect(records).To(BeEmpty())
		})

		It("keeps employees' histories apart", func() {
			other, err := employees.Create(ctx, hirePayload("maria@example.com"))
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.RecordEvent(ctx, event(other.EmployeeID), models.AttendanceTimeIn)
			Expect(err).NotTo(HaveOccurred())

			records, err := svc.History(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})

		It("reports NotFound for an unknown employee", func() {
			_, err := svc.History(ctx, "EMP-0")
			expectAppError(err, apperror.ErrorTypeNotFound)
		})
	})

	Describe("Status", func() {
		It("is NONE before any event", func() {
			status, err := svc.Status(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status.State).To(Equal(models.ClockStateNone))
			Expect(status.LastRecord).To(BeNil())
		})

		It("follows the latest event", func() {
			_, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeIn)
			Expect(err).NotTo(HaveOccurred())
			status, _ := svc.Status(ctx, emp.EmployeeID)
			Expect(status.State).To(Equal(models.ClockStateIn))

			resp, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeOut)
			Expect(err).NotTo(HaveOccurred())
			status, _ = svc.Status(ctx, emp.EmployeeID)
			Expect(status.State).To(Equal(models.ClockStateOut))
			Expect(status.LastRecord.ID).To(Equal(resp.Record.ID))
		})
	})

	Describe("ExportHistory", func() {
		It("writes one row per record under a header", func() {
			_, err := svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeIn)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.RecordEvent(ctx, event(emp.EmployeeID), models.AttendanceTimeOut)
			Expect(err).NotTo(HaveOccurred())

			buf, filename, err := svc.ExportHistory(ctx, emp.EmployeeID)
			Expect(err).NotTo(HaveOccurred())
			Expect(filename).To(Equal("attendance_" + emp.EmployeeID + ".xlsx"))

			f, err := excelize.OpenReader(buf)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Attendance")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0]).To(Equal([]string{"#", "Type", "Timestamp", "Location"}))
			Expect(rows[1][0]).To(Equal("1"))
			Expect(rows[1][1]).To(Equal("time-in"))
			Expect(rows[2][1]).To(Equal("time-out"))
			Expect(rows[2][3]).To(Equal(models.OfficeLocation))
		})

		It("reports NotFound for an unknown employee", func() {
			_, _, err := svc.ExportHistory(ctx, "EMP-0")
			expectAppError(err, apperror.ErrorTypeNotFound)
		})
	})
})
