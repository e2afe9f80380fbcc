package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
	"Employee-Management-System/repository/memory"
	"Employee-Management-System/service"
)

func strPtr(s string) *string { return &s }

var _ = Describe("PositionService", func() {
	var (
		ctx context.Context
		svc *service.PositionService
	)

	BeforeEach(func() {
		ctx = context.Background()
		svc = service.NewPositionService(memory.NewStore(), zap.NewNop())
	})

	Describe("Create", func() {
		It("stores title and department id trimmed", func() {
			pos, err := svc.Create(ctx, models.PositionCreatePayload{Title: " Engineer ", DepartmentID: " d1 "})
			Expect(err).NotTo(HaveOccurred())
			Expect(pos.Title).To(Equal("Engineer"))
			Expect(pos.DepartmentID).To(Equal("d1"))
			Expect(pos.ID.IsZero()).To(BeFalse())

			stored, err := svc.Get(ctx, pos.ID.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(Equal(pos))
		})

		It("does not check that the department exists", func() {
			_, err := svc.Create(ctx, models.PositionCreatePayload{Title: "Engineer", DepartmentID: "no-such-department"})
			Expect(err).NotTo(HaveOccurred())
		})

		DescribeTable("rejects missing fields",
			func(payload models.PositionCreatePayload, message string) {
				_, err := svc.Create(ctx, payload)
				appErr := expectAppError(err, apperror.ErrorTypeValidation)
				Expect(appErr.Message).To(Equal(message))
			},
			Entry("no title", models.PositionCreatePayload{DepartmentID: "d1"}, "A position title is required."),
			Entry("blank title", models.PositionCreatePayload{Title: "  ", DepartmentID: "d1"}, "A position title is required."),
			Entry("no department", models.PositionCreatePayload{Title: "Engineer"}, "A department ID is required to create a position."),
		)
	})

	Describe("Update", func() {
		var pos *models.Position

		BeforeEach(func() {
			var err error
			pos, err = svc.Create(ctx, models.PositionCreatePayload{Title: "Engineer", DepartmentID: "d1"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("changes only the title when only the title is given", func() {
			updated, err := svc.Update(ctx, pos.ID.Hex(), models.PositionPatch{Title: strPtr("Senior Engineer")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("Senior Engineer"))
			Expect(updated.DepartmentID).To(Equal("d1"))
		})

		It("ignores a blank field next to a valid one", func() {
			updated, err := svc.Update(ctx, pos.ID.Hex(), models.PositionPatch{Title: strPtr(" "), DepartmentID: strPtr("d2")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Title).To(Equal("Engineer"))
			Expect(updated.DepartmentID).To(Equal("d2"))
		})

		It("rejects a patch with nothing usable", func() {
			_, err := svc.Update(ctx, pos.ID.Hex(), models.PositionPatch{Title: strPtr(""), DepartmentID: strPtr("  ")})
			appErr := expectAppError(err, apperror.ErrorTypeValidation)
			Expect(appErr.Message).To(Equal("You must provide a title or departmentId to update the position."))
		})

		It("reports NotFound for an unknown id", func() {
			_, err := svc.Update(ctx, primitive.NewObjectID().Hex(), models.PositionPatch{Title: strPtr("X")})
			appErr := expectAppError(err, apperror.ErrorTypeNotFound)
			Expect(appErr.Code).To(Equal(apperror.ErrCodePositionNotFound))
		})
	})

	Describe("Delete", func() {
		It("hard deletes", func() {
			pos, _ := svc.Create(ctx, models.PositionCreatePayload{Title: "Engineer", DepartmentID: "d1"})
			Expect(svc.Delete(ctx, pos.ID.Hex())).To(Succeed())

			all, err := svc.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})

		It("reports NotFound for an unknown id", func() {
			err := svc.Delete(ctx, primitive.NewObjectID().Hex())
			expectAppError(err, apperror.ErrorTypeNotFound)
		})
	})
})
