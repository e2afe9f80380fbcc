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

var _ = Describe("Department routes", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = newTestApp(memory.NewStore())
	})

	createDepartment := func(name string) models.Department {
		GinkgoHelper()
		resp := do(app, http.MethodPost, "/api/departments", map[string]string{"name": name})
		Expect(resp.Status).To(Equal(http.StatusCreated))
		var dept models.Department
		resp.JSON(&dept)
		return dept
	}

	It("creates, reads, updates and deletes a department", func() {
		dept := createDepartment("Engineering")
		Expect(dept.ID.IsZero()).To(BeFalse())
		Expect(dept.Name).To(Equal("Engineering"))

		resp := do(app, http.MethodGet, "/api/departments/"+dept.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		var fetched models.Department
		resp.JSON(&fetched)
		Expect(fetched.Name).To(Equal("Engineering"))

		resp = do(app, http.MethodPut, "/api/departments/"+dept.ID.Hex(), map[string]string{"name": "Platform"})
		Expect(resp.Status).To(Equal(http.StatusOK))
		var updated models.Department
		resp.JSON(&updated)
		Expect(updated.Name).To(Equal("Platform"))

		resp = do(app, http.MethodDelete, "/api/departments/"+dept.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusNoContent))
		Expect(resp.Body).To(BeEmpty())

		resp = do(app, http.MethodGet, "/api/departments/"+dept.ID.Hex(), nil)
		Expect(resp.Status).To(Equal(http.StatusNotFound))
	})

	It("lists departments with camelCase fields", func() {
		createDepartment("A")
		createDepartment("B")

		resp := do(app, http.MethodGet, "/api/departments", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))

		var raw []map[string]interface{}
		resp.JSON(&raw)
		Expect(raw).To(HaveLen(2))
		Expect(raw[0]).To(HaveKey("id"))
		Expect(raw[0]).To(HaveKey("createdAt"))
		Expect(raw[0]["name"]).To(Equal("A"))
	})

	It("returns an empty JSON array when there are none", func() {
		resp := do(app, http.MethodGet, "/api/departments", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		Expect(string(resp.Body)).To(Equal("[]"))
	})

	DescribeTable("rejects invalid create bodies with 400",
		func(body interface{}, message string) {
			resp := do(app, http.MethodPost, "/api/departments", body)
			Expect(resp.Status).To(Equal(http.StatusBadRequest))
			Expect(resp.Message()).To(Equal(message))
		},
		Entry("missing name", map[string]string{}, "A department name is required."),
		Entry("blank name", map[string]string{"name": "   "}, "A department name is required."),
		Entry("non-string name", `{"name": 42}`, "Invalid request body"),
		Entry("malformed JSON", `{"name":`, "Invalid request body"),
	)

	It("rejects a blank name on update", func() {
		dept := createDepartment("Engineering")
		resp := do(app, http.MethodPut, "/api/departments/"+dept.ID.Hex(), map[string]string{"name": ""})
		Expect(resp.Status).To(Equal(http.StatusBadRequest))
		Expect(resp.Message()).To(Equal("A department name is required for update."))
	})

	DescribeTable("answers 404 for ids that do not exist",
		func(method string, body interface{}) {
			id := primitive.NewObjectID().Hex()
			resp := do(app, method, "/api/departments/"+id, body)
			Expect(resp.Status).To(Equal(http.StatusNotFound))
			Expect(resp.Message()).To(Equal("Department with ID " + id + " not found."))
		},
		Entry("get", http.MethodGet, nil),
		Entry("update", http.MethodPut, map[string]string{"name": "X"}),
		Entry("delete", http.MethodDelete, nil),
	)

	It("answers 404 for a malformed id", func() {
		resp := do(app, http.MethodGet, "/api/departments/not-an-object-id", nil)
		Expect(resp.Status).To(Equal(http.StatusNotFound))
	})
})
