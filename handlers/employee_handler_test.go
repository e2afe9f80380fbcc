package handlers_test

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Management-System/models"
	"Employee-Management-System/repository/memory"
)

func employeeBody(email string) map[string]string {
	return map[string]string{
		"firstName":    "Juan",
		"lastName":     "Dela Cruz",
		"email":        email,
		"positionId":   "p1",
		"departmentId": "d1",
	}
}

var _ = Describe("Employee routes", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = newTestApp(memory.NewStore())
	})

	hire := func(email string) models.Employee {
		GinkgoHelper()
		resp := do(app, http.MethodPost, "/api/employees", employeeBody(email))
		Expect(resp.Status).To(Equal(http.StatusCreated), "body: %s", resp.Body)
		var emp models.Employee
		resp.JSON(&emp)
		return emp
	}

	It("hires an employee", func() {
		emp := hire("Juan@Example.com")
		Expect(emp.EmployeeID).To(HavePrefix("EMP-"))
		Expect(emp.Email).To(Equal("juan@example.com"))
		Expect(emp.IsActive).To(BeTrue())

		resp := do(app, http.MethodGet, "/api/employees/"+emp.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		var stored models.Employee
		resp.JSON(&stored)
		Expect(stored).To(Equal(emp))
	})

	It("rejects a missing required field", func() {
		body := employeeBody("juan@example.com")
		delete(body, "positionId")

		resp := do(app, http.MethodPost, "/api/employees", body)
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("All required fields must be provided to hire an employee."))
	})

	It("answers 409 for a second active employee with the same email", func() {
		hire("dup@example.com")

		resp := do(app, http.MethodPost, "/api/employees", employeeBody("DUP@example.com"))
		Expect(resp.Status).To(Equal(http.StatusConflict))
		Expect(resp.Message()).To(Equal("An active employee with this email already exists."))
	})

	It("updates supplied fields only", func() {
		emp := hire("juan@example.com")

		resp := do(app, http.MethodPut, "/api/employees/"+emp.ID.Hex(), map[string]interface{}{"firstName": "John"})
		Expect(resp.Status).To(Equal(http.StatusOK))
		var updated models.Employee
		resp.JSON(&updated)
		Expect(updated.FirstName).To(Equal("John"))
		Expect(updated.LastName).To(Equal("Dela Cruz"))
	})

	It("rejects an empty update", func() {
		emp := hire("juan@example.com")

		resp := do(app, http.MethodPut, "/api/employees/"+emp.ID.Hex(), map[string]interface{}{})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("Please provide at least one valid field to update."))
	})

	It("answers 409 when an update would duplicate an active email", func() {
		hire("maria@example.com")
		emp := hire("juan@example.com")

		resp := do(app, http.MethodPut, "/api/employees/"+emp.ID.Hex(), map[string]interface{}{"email": "maria@example.com"})
		Expect(resp.Status).To(Equal(http.StatusConflict))
	})

	It("soft deletes: the employee is still listed, inactive", func() {
		emp := hire("juan@example.com")

		resp := do(app, http.MethodDelete, "/api/employees/"+emp.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusNoContent))

		resp = do(app, http.MethodGet, "/api/employees", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		var all []models.Employee
		resp.JSON(&all)
		Expect(all).To(HaveLen(1))
		Expect(all[0].IsActive).To(BeFalse())

		resp = do(app, http.MethodGet, "/api/employees/"+emp.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
	})

	It("answers 404 for an unknown id", func() {
		id := primitive.NewObjectID().Hex()
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			resp := do(app, method, "/api/employees/"+id, nil)
			Expect(resp.Status).To(Equal(http.StatusNotFound))
			Expect(resp.Message()).To(Equal("Employee with ID " + id + " not found."))
		}
		resp := do(app, http.MethodPut, "/api/employees/"+id, map[string]interface{}{"firstName": "X"})
		Expect(resp.Status).To(Equal(http.StatusNotFound))
	})

	Describe("badge", func() {
		It("serves a PNG", func() {
			emp := hire("juan@example.com")

			resp := do(app, http.MethodGet, "/api/employees/"+emp.ID.Hex()+"/badge?size=128", nil)
			Expect(resp.Status).To(Equal(http.StatusOK))
			Expect(resp.Header.Get(fiber.HeaderContentType)).To(Equal("image/png"))
			Expect(strings.HasPrefix(string(resp.Body), "\x89PNG")).To(BeTrue())
		})

		It("rejects an out-of-range size", func() {
			emp := hire("juan@example.com")
			resp := do(app, http.MethodGet, "/api/employees/"+emp.ID.Hex()+"/badge?size=4096", nil)
			Expect(resp.Status).To(Equal(http.StatusBadRequest))
		})

		It("answers 404 for an unknown employee", func() {
			resp := do(app, http.MethodGet, "/api/employees/"+primitive.NewObjectID().Hex()+"/badge", nil)
			Expect(resp.Status).To(Equal(http.StatusNotFound))
		})

		It("answers 404 for an unknown employee before checking the size", func() {
			resp := do(app, http.MethodGet, "/api/employees/"+primitive.NewObjectID().Hex()+"/badge?size=5", nil)
			Expect(resp.Status).To(Equal(http.StatusNotFound))
		})
	})
})
