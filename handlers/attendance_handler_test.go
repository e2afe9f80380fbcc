package handlers_test

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"Employee-Management-System/models"
	"Employee-Management-System/repository/memory"
)

var _ = Describe("Attendance routes", func() {
	var (
		app   *fiber.App
		store *memory.Store
		emp   models.Employee
	)

	BeforeEach(func() {
		store = memory.NewStore()
		app = newTestApp(store)

		resp := do(app, http.MethodPost, "/api/employees", employeeBody("juan@example.com"))
		Expect(resp.Status).To(Equal(http.StatusCreated))
		resp.JSON(&emp)
	})

	clock := func(kind string) testResponse {
		return do(app, http.MethodPost, "/api/attendance/"+kind, map[string]string{"employeeId": emp.EmployeeID})
	}

	It("records time-in and time-out", func() {
		resp := clock("time-in")
		Expect(resp.Status).To(Equal(http.StatusCreated))
		var in models.AttendanceEventResponse
		resp.JSON(&in)
		Expect(in.Message).To(Equal("Employee " + emp.EmployeeID + " successfully recorded time-in."))
		Expect(in.Record.Type).To(Equal(models.AttendanceTimeIn))
		Expect(in.Record.Location).To(Equal(models.OfficeLocation))

		resp = clock("time-out")
		Expect(resp.Status).To(Equal(http.StatusCreated))
		var out models.AttendanceEventResponse
		resp.JSON(&out)
		Expect(out.Record.Type).To(Equal(models.AttendanceTimeOut))
	})

	It("takes the event type from the route, not the body", func() {
		resp := do(app, http.MethodPost, "/api/attendance/time-in",
			map[string]string{"employeeId": emp.EmployeeID, "type": "time-out"})
		Expect(resp.Status).To(Equal(http.StatusCreated))
		var in models.AttendanceEventResponse
		resp.JSON(&in)
		Expect(in.Record.Type).To(Equal(models.AttendanceTimeIn))
	})

	It("answers 400 without an employeeId", func() {
		resp := do(app, http.MethodPost, "/api/attendance/time-in", map[string]string{})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("employeeId is required in the request body."))
	})

	It("answers 404 for an unknown employee and stores nothing", func() {
		resp := do(app, http.MethodPost, "/api/attendance/time-out", map[string]string{"employeeId": "EMP-1"})
		Expect(resp.Status).To(Equal(http.StatusNotFound))
		Expect(store.AttendanceCount()).To(Equal(0))
	})

	It("lists records oldest first without exposing the parent reference", func() {
		clock("time-in")
		clock("time-out")

		resp := do(app, http.MethodGet, "/api/attendance/"+emp.EmployeeID+"/records", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))

		var raw []map[string]interface{}
		resp.JSON(&raw)
		Expect(raw).To(HaveLen(2))
		Expect(raw[0]["type"]).To(Equal("time-in"))
		Expect(raw[1]["type"]).To(Equal("time-out"))
		Expect(raw[0]).NotTo(HaveKey("employeeRef"))
	})

	It("answers 404 for the history of an unknown employee", func() {
		resp := do(app, http.MethodGet, "/api/attendance/EMP-1/records", nil)
		Expect(resp.Status).To(Equal(http.StatusNotFound))
	})

	It("reports the derived clock state", func() {
		resp := do(app, http.MethodGet, "/api/attendance/"+emp.EmployeeID+"/status", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		var status models.AttendanceStatus
		resp.JSON(&status)
		Expect(status.State).To(Equal(models.ClockStateNone))

		clock("time-in")
		resp = do(app, http.MethodGet, "/api/attendance/"+emp.EmployeeID+"/status", nil)
		resp.JSON(&status)
		Expect(status.State).To(Equal(models.ClockStateIn))
		Expect(status.EmployeeID).To(Equal(emp.EmployeeID))
	})

	It("exports the history as a spreadsheet download", func() {
		clock("time-in")

		resp := do(app, http.MethodGet, "/api/attendance/"+emp.EmployeeID+"/records/export", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		Expect(resp.Header.Get(fiber.HeaderContentType)).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))
		Expect(resp.Header.Get(fiber.HeaderContentDisposition)).To(ContainSubstring("attendance_" + emp.EmployeeID + ".xlsx"))
		Expect(string(resp.Body[:2])).To(Equal("PK"))
	})
})
