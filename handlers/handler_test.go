package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/swaggo/swag"

	"Employee-Management-System/models"
	"Employee-Management-System/repository/memory"
)

var _ = Describe("Application", func() {
	var app *fiber.App

	BeforeEach(func() {
		app = newTestApp(memory.NewStore())
	})

	It("serves a health check at the root", func() {
		resp := do(app, http.MethodGet, "/", nil)
		Expect(resp.Status).To(Equal(http.StatusOK))
		var health models.HealthResponse
		resp.JSON(&health)
		Expect(health.Status).To(Equal("running"))
		Expect(health.Docs).To(Equal("/docs/index.html"))
	})

	It("documents only routes under the /api base path", func() {
		raw, err := swag.ReadDoc()
		Expect(err).NotTo(HaveOccurred())

		var doc struct {
			BasePath string                     `json:"basePath"`
			Paths    map[string]json.RawMessage `json:"paths"`
		}
		Expect(json.Unmarshal([]byte(raw), &doc)).To(Succeed())
		Expect(doc.BasePath).To(Equal("/api"))
		Expect(doc.Paths).NotTo(HaveKey("/"))
		Expect(doc.Paths).To(HaveKey("/employees/{id}/badge"))
	})

	It("tags responses with a request id", func() {
		resp := do(app, http.MethodGet, "/api/departments", nil)
		Expect(resp.Header.Get(fiber.HeaderXRequestID)).NotTo(BeEmpty())
	})

	It("answers unknown routes with a JSON 404", func() {
		resp := do(app, http.MethodGet, "/api/nope", nil)
		Expect(resp.Status).To(Equal(http.StatusNotFound))
		Expect(resp.Message()).NotTo(BeEmpty())
	})

	It("turns a panic into a generic 500", func() {
		app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })

		resp := do(app, http.MethodGet, "/panic", nil)
		Expect(resp.Status).To(Equal(http.StatusInternalServerError))
		Expect(resp.Message()).To(Equal("Internal server error"))
	})
})
