package handlers_test

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Employee-Management-System/models"
	"Employee-Management-System/repository/memory"
)

var _ = Describe("Position routes", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = newTestApp(memory.NewStore())
	})

	createPosition := func() models.Position {
		GinkgoHelper()
		resp := do(app, http.MethodPost, "/api/positions", map[string]string{"title": "Engineer", "departmentId": "d1"})
		Expect(resp.Status).To(Equal(http.StatusCreated))
		var pos models.Position
		resp.JSON(&pos)
		return pos
	}

	It("creates a position", func() {
		pos := createPosition()
		Expect(pos.Title).To(Equal("Engineer"))
		Expect(pos.DepartmentID).To(Equal("d1"))

		resp := do(app, http.MethodGet, "/api/positions", nil)
		var all []models.Position
		resp.JSON(&all)
		Expect(all).To(HaveLen(1))
	})

	It("requires both title and departmentId", func() {
		resp := do(app, http.MethodPost, "/api/positions", map[string]string{"title": "Engineer"})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("A department ID is required to create a position."))

		resp = do(app, http.MethodPost, "/api/positions", map[string]string{"departmentId": "d1"})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("A position title is required."))
	})

	It("updates only the supplied field", func() {
		pos := createPosition()

		resp := do(app, http.MethodPut, "/api/positions/"+pos.ID.Hex(), map[string]string{"departmentId": "d2"})
		Expect(resp.Status).To(Equal(http.StatusOK))
		var updated models.Position
		resp.JSON(&updated)
		Expect(updated.Title).To(Equal("Engineer"))
		Expect(updated.DepartmentID).To(Equal("d2"))
	})

	It("rejects an update with neither field", func() {
		pos := createPosition()
		resp := do(app, http.MethodPut, "/api/positions/"+pos.ID.Hex(), map[string]string{})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("You must provide a title or departmentId to update the position."))
	})

	It("deletes and then reports 404", func() {
		pos := createPosition()
		Expect(do(app, http.MethodDelete, "/api/positions/"+pos.ID.Hex(), nil).Status).To(Equal(http.StatusNoContent))
		Expect(do(app, http.MethodDelete, "/api/positions/"+pos.ID.Hex(), nil).Status).To(Equal(http.StatusNotFound))
	})

	It("answers 404 for an unknown id", func() {
		id := primitive.NewObjectID().Hex()
		resp := do(app, http.MethodGet, "/api/positions/"+id, nil)
		Expect(resp.Status).To(Equal(http.StatusNotFound))
		Expect(resp.Message()).To(Equal("Position with ID " + id + " not found."))
	})
})
